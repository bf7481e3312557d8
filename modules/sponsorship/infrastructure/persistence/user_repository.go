package persistence

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
)

// UserRepository is the in-memory directory backing the "memory" driver.
// Login mints an opaque token per call, matching the remote directory's
// token-per-login behavior.
type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email().Value(), email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) Login(ctx context.Context, id string) (string, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return "", err
	}
	return uuid.NewString(), nil
}
