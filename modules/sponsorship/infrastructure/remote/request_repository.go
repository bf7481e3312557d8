package remote

import (
	"context"
	"fmt"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
)

// RequestRepository talks to the events backend. The backend offers plain
// CRUD, so CompareAndSwap is read-verify-then-write: the precondition is
// checked against a fresh read right before the PUT. Against the single
// shared backend this closes the race window to the verify-write gap.
type RequestRepository struct {
	client *Client
}

func NewRequestRepository(client *Client) *RequestRepository {
	return &RequestRepository{client: client}
}

func (r *RequestRepository) GetAll(ctx context.Context) ([]request.Request, error) {
	var models []eventModel
	if err := r.client.get(ctx, "/events", &models); err != nil {
		return nil, err
	}
	out := make([]request.Request, 0, len(models))
	for _, m := range models {
		req, err := toDomainRequest(m)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (request.Request, error) {
	var m eventModel
	if err := r.client.get(ctx, "/events/"+id, &m); err != nil {
		if t, ok := err.(*TransportError); ok && t.StatusCode == 404 {
			return request.Request{}, request.ErrNotFound
		}
		return request.Request{}, err
	}
	return toDomainRequest(m)
}

func (r *RequestRepository) Create(ctx context.Context, req request.Request) (request.Request, error) {
	body := createEventModel{
		Title:       req.Title(),
		Description: req.Description(),
		Budget:      req.BudgetEstimate().Wire(),
	}
	var created eventModel
	if err := r.client.post(ctx, "/events/create", body, &created); err != nil {
		return request.Request{}, err
	}
	return toDomainRequest(created)
}

func (r *RequestRepository) Update(ctx context.Context, req request.Request) (request.Request, error) {
	// The backend answers a bare boolean for PUT.
	var accepted bool
	if err := r.client.put(ctx, "/events/"+req.ID(), toEventModel(req), &accepted); err != nil {
		if t, ok := err.(*TransportError); ok && t.StatusCode == 404 {
			return request.Request{}, request.ErrNotFound
		}
		return request.Request{}, err
	}
	if !accepted {
		return request.Request{}, fmt.Errorf("%w: backend declined the write", request.ErrConcurrentModification)
	}
	return req, nil
}

func (r *RequestRepository) CompareAndSwap(ctx context.Context, expected request.Status, updated request.Request) (request.Request, error) {
	stored, err := r.GetByID(ctx, updated.ID())
	if err != nil {
		return request.Request{}, err
	}
	if stored.Status() != expected {
		return request.Request{}, request.ErrConcurrentModification
	}
	return r.Update(ctx, updated)
}
