package user

import (
	"context"

	"github.com/ghazalrb98/sep/pkg/serrors"
)

var ErrNotFound = serrors.NewError("USER_NOT_FOUND", "user not found")

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// Login exchanges a user identity for a bearer token issued by the
	// directory backend.
	Login(ctx context.Context, id string) (string, error)
}
