package persistence

import (
	"context"
	"strconv"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/review"
)

// ReviewRepository stores reviews next to the in-memory request store.
// Submit takes the request store's lock so the status transition and the
// recorded review are one atomic step.
type ReviewRepository struct {
	requests *RequestRepository
	reviews  []review.Review
}

func NewReviewRepository(requests *RequestRepository) *ReviewRepository {
	return &ReviewRepository{requests: requests}
}

func (r *ReviewRepository) GetByEventID(ctx context.Context, eventID string) (review.Review, error) {
	if err := ctx.Err(); err != nil {
		return review.Review{}, err
	}
	r.requests.mu.RLock()
	defer r.requests.mu.RUnlock()

	// Last-wins when several reviews exist for the same request.
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if r.reviews[i].EventID() == eventID {
			return r.reviews[i], nil
		}
	}
	return review.Review{}, review.ErrNotFound
}

func (r *ReviewRepository) Submit(
	ctx context.Context,
	eventID string,
	expected request.Status,
	decision review.Decision,
	comment string,
) (review.Review, error) {
	if err := ctx.Err(); err != nil {
		return review.Review{}, err
	}
	r.requests.mu.Lock()
	defer r.requests.mu.Unlock()

	stored, err := r.requests.getLocked(eventID)
	if err != nil {
		return review.Review{}, err
	}

	next := request.StatusInProgress
	if decision == review.DecisionRejected {
		next = request.StatusRejected
	}
	if _, err := r.requests.compareAndSwapLocked(expected, stored.WithStatus(next)); err != nil {
		return review.Review{}, err
	}

	rec := review.Hydrate(
		strconv.Itoa(len(r.reviews)+1),
		eventID,
		decision,
		comment,
		time.Now(),
	)
	r.reviews = append(r.reviews, rec)
	return rec, nil
}
