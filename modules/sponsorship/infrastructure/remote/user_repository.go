package remote

import (
	"context"
	"net/url"
	"strings"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
)

// UserRepository reads the directory from the backend. The backend has no
// lookup endpoints, so GetByID and GetByEmail filter the full listing.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	var models []userModel
	if err := r.client.get(ctx, "/users", &models); err != nil {
		return nil, err
	}
	out := make([]user.User, 0, len(models))
	for _, m := range models {
		u, err := toDomainUser(m)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range all {
		if u.ID() == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range all {
		if strings.EqualFold(u.Email().Value(), email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) Login(ctx context.Context, id string) (string, error) {
	var m loginModel
	if err := r.client.post(ctx, "/login?userId="+url.QueryEscape(id), nil, &m); err != nil {
		return "", err
	}
	return m.Token, nil
}
