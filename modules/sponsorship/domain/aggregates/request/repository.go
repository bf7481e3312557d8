package request

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, r Request) (Request, error)
	// Update is a full replace of the stored request.
	Update(ctx context.Context, r Request) (Request, error)
	// CompareAndSwap writes updated only if the stored request still has the
	// expected status. A mismatch returns ErrConcurrentModification and
	// leaves the stored request untouched.
	CompareAndSwap(ctx context.Context, expected Status, updated Request) (Request, error)
}
