package services

import (
	"context"
	"fmt"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
	"github.com/ghazalrb98/sep/modules/sponsorship/permissions"
	"github.com/ghazalrb98/sep/pkg/composables"
	"github.com/ghazalrb98/sep/pkg/eventbus"
)

type BudgetService struct {
	requests  request.Repository
	publisher eventbus.EventBus
}

func NewBudgetService(requests request.Repository, publisher eventbus.EventBus) *BudgetService {
	return &BudgetService{requests: requests, publisher: publisher}
}

// SetApprovedBudget writes the approved figure on a request that is In
// Progress. The write carries the status precondition, so a concurrent
// transition surfaces as request.ErrConcurrentModification.
func (s *BudgetService) SetApprovedBudget(ctx context.Context, id string, amount int64) (request.Request, error) {
	if err := authorize(ctx, permissions.BudgetApprove); err != nil {
		return request.Request{}, err
	}

	approved, err := budget.NewAmount(amount)
	if err != nil {
		return request.Request{}, err
	}

	stored, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return request.Request{}, err
	}
	if stored.Status() != request.StatusInProgress {
		return request.Request{}, fmt.Errorf("%w: status is %s", request.ErrInvalidState, stored.Status())
	}

	updated, err := s.requests.CompareAndSwap(ctx, request.StatusInProgress, stored.WithApprovedBudget(approved))
	if err != nil {
		return request.Request{}, err
	}

	if s.publisher != nil {
		var actor string
		if u, err := composables.UseUser(ctx); err == nil {
			actor = u.ID()
		}
		s.publisher.Publish(request.BudgetApprovedEvent{Actor: actor, Result: updated})
	}
	return updated, nil
}
