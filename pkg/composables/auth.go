package composables

import (
	"context"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/pkg/constants"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

var (
	ErrNoUser  = serrors.NewError("NO_USER_IN_CONTEXT", "no authenticated user in context")
	ErrNoToken = serrors.NewError("NO_TOKEN_IN_CONTEXT", "no bearer token in context")
)

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

// UseUser returns the authenticated user or ErrNoUser. Callers treat the
// error as an authorization failure.
func UseUser(ctx context.Context) (user.User, error) {
	u, ok := ctx.Value(constants.UserKey).(user.User)
	if !ok || u.IsZero() {
		return user.User{}, ErrNoUser
	}
	return u, nil
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constants.TokenKey, token)
}

func UseToken(ctx context.Context) (string, error) {
	token, ok := ctx.Value(constants.TokenKey).(string)
	if !ok || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
