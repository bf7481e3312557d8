package persistence

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
)

// RequestRepository is the in-memory request store used by the "memory"
// repository driver and by tests. CompareAndSwap is atomic under the lock,
// so racing writers observe a real precondition failure.
type RequestRepository struct {
	mu       sync.RWMutex
	requests map[string]request.Request
	nextID   int64
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{
		requests: make(map[string]request.Request),
		nextID:   1,
	}
}

func (r *RequestRepository) GetAll(ctx context.Context) ([]request.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]request.Request, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (request.Request, error) {
	if err := ctx.Err(); err != nil {
		return request.Request{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(id)
}

func (r *RequestRepository) Create(ctx context.Context, req request.Request) (request.Request, error) {
	if err := ctx.Err(); err != nil {
		return request.Request{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	created := req.WithID(strconv.FormatInt(r.nextID, 10))
	r.nextID++
	r.requests[created.ID()] = created
	return created, nil
}

func (r *RequestRepository) Update(ctx context.Context, req request.Request) (request.Request, error) {
	if err := ctx.Err(); err != nil {
		return request.Request{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.getLocked(req.ID()); err != nil {
		return request.Request{}, err
	}
	r.requests[req.ID()] = req
	return req, nil
}

func (r *RequestRepository) CompareAndSwap(ctx context.Context, expected request.Status, updated request.Request) (request.Request, error) {
	if err := ctx.Err(); err != nil {
		return request.Request{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.compareAndSwapLocked(expected, updated)
}

func (r *RequestRepository) getLocked(id string) (request.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return request.Request{}, request.ErrNotFound
	}
	return req, nil
}

func (r *RequestRepository) compareAndSwapLocked(expected request.Status, updated request.Request) (request.Request, error) {
	stored, err := r.getLocked(updated.ID())
	if err != nil {
		return request.Request{}, err
	}
	if stored.Status() != expected {
		return request.Request{}, request.ErrConcurrentModification
	}
	r.requests[updated.ID()] = updated
	return updated, nil
}
