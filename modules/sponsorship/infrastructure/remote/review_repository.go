package remote

import (
	"context"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/review"
)

// ReviewRepository uses the backend's review endpoints. The decision
// endpoints apply the status transition on the backend side; Submit
// verifies the expected status with a fresh read first.
type ReviewRepository struct {
	client *Client
}

func NewReviewRepository(client *Client) *ReviewRepository {
	return &ReviewRepository{client: client}
}

func (r *ReviewRepository) GetByEventID(ctx context.Context, eventID string) (review.Review, error) {
	models, err := r.list(ctx)
	if err != nil {
		return review.Review{}, err
	}

	// The backend keeps every review; the latest one counts.
	for i := len(models) - 1; i >= 0; i-- {
		if string(models[i].EventID) == eventID {
			// The listing does not carry the decision; callers read it off
			// the request status.
			return toDomainReview(models[i], ""), nil
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
	var m eventModel
	if err := r.client.get(ctx, "/events/"+eventID, &m); err != nil {
		if t, ok := err.(*TransportError); ok && t.StatusCode == 404 {
			return review.Review{}, request.ErrNotFound
		}
		return review.Review{}, err
	}
	if request.Status(m.Status) != expected {
		return review.Review{}, request.ErrConcurrentModification
	}

	path := "/reviews/approve/" + eventID
	if decision == review.DecisionRejected {
		path = "/reviews/reject/" + eventID
	}
	// The decision endpoints take the comment as a bare JSON string.
	if err := r.client.post(ctx, path, comment, nil); err != nil {
		return review.Review{}, err
	}

	latest, err := r.GetByEventID(ctx, eventID)
	if err != nil {
		return review.Review{}, err
	}
	return review.Hydrate(latest.ID(), eventID, decision, latest.Comment(), latest.SubmittedAt()), nil
}

func (r *ReviewRepository) list(ctx context.Context) ([]reviewModel, error) {
	var models []reviewModel
	if err := r.client.get(ctx, "/reviews/", &models); err != nil {
		return nil, err
	}
	return models, nil
}
