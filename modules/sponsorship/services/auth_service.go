package services

import (
	"context"
	"sync"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

var ErrInvalidSession = serrors.NewError("INVALID_SESSION", "session expired or unknown")

type session struct {
	user      user.User
	expiresAt time.Time
}

type sessionCache struct {
	mu      sync.RWMutex
	entries map[string]session
}

// AuthService exchanges an email for a bearer token via the directory
// backend and keeps a token -> user session cache with a TTL.
type AuthService struct {
	users    user.Repository
	ttl      time.Duration
	clock    func() time.Time
	sessions *sessionCache
}

func NewAuthService(users user.Repository, ttl time.Duration) *AuthService {
	return &AuthService{
		users: users,
		ttl:   ttl,
		clock: time.Now,
		sessions: &sessionCache{
			entries: make(map[string]session),
		},
	}
}

func (s *AuthService) WithClock(clock func() time.Time) *AuthService {
	s.clock = clock
	return s
}

func (s *AuthService) Login(ctx context.Context, email string) (string, user.User, error) {
	parsed, err := internet.NewEmail(email)
	if err != nil {
		return "", user.User{}, err
	}

	u, err := s.users.GetByEmail(ctx, parsed.Value())
	if err != nil {
		return "", user.User{}, err
	}

	token, err := s.users.Login(ctx, u.ID())
	if err != nil {
		return "", user.User{}, err
	}

	s.sessions.mu.Lock()
	s.sessions.entries[token] = session{user: u, expiresAt: s.clock().Add(s.ttl)}
	s.sessions.mu.Unlock()

	return token, u, nil
}

// Authenticate resolves a bearer token to the logged-in user. Expired
// sessions are evicted on access.
func (s *AuthService) Authenticate(ctx context.Context, token string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	s.sessions.mu.RLock()
	sess, ok := s.sessions.entries[token]
	s.sessions.mu.RUnlock()

	if !ok {
		return user.User{}, ErrInvalidSession
	}
	if s.clock().After(sess.expiresAt) {
		s.sessions.mu.Lock()
		delete(s.sessions.entries, token)
		s.sessions.mu.Unlock()
		return user.User{}, ErrInvalidSession
	}
	return sess.user, nil
}

func (s *AuthService) Users(ctx context.Context) ([]user.User, error) {
	return s.users.GetAll(ctx)
}
