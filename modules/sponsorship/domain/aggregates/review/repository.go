package review

import (
	"context"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

var ErrNotFound = serrors.NewError("REVIEW_NOT_FOUND", "no review recorded for this request")

type Repository interface {
	// GetByEventID returns the latest review for the request, last-wins when
	// the backend holds several.
	GetByEventID(ctx context.Context, eventID string) (Review, error)
	// Submit records the decision and applies the matching status transition
	// as one precondition write: the request must still have the expected
	// status, otherwise request.ErrConcurrentModification is returned and
	// nothing is recorded.
	Submit(ctx context.Context, eventID string, expected request.Status, decision Decision, comment string) (Review, error)
}
