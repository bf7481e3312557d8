package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/review"
	"github.com/ghazalrb98/sep/modules/sponsorship/permissions"
	"github.com/ghazalrb98/sep/pkg/composables"
	"github.com/ghazalrb98/sep/pkg/eventbus"
)

type ReviewService struct {
	requests  request.Repository
	reviews   review.Repository
	publisher eventbus.EventBus
}

func NewReviewService(requests request.Repository, reviews review.Repository, publisher eventbus.EventBus) *ReviewService {
	return &ReviewService{
		requests:  requests,
		reviews:   reviews,
		publisher: publisher,
	}
}

func (s *ReviewService) Approve(ctx context.Context, id, comment string) (request.Request, error) {
	return s.decide(ctx, id, review.DecisionApproved, comment)
}

func (s *ReviewService) Reject(ctx context.Context, id, comment string) (request.Request, error) {
	return s.decide(ctx, id, review.DecisionRejected, comment)
}

// Comment returns the latest review comment for a request, empty when none
// has been recorded yet.
func (s *ReviewService) Comment(ctx context.Context, requestID string) (string, error) {
	if _, err := composables.UseUser(ctx); err != nil {
		return "", err
	}
	latest, err := s.reviews.GetByEventID(ctx, requestID)
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return latest.Comment(), nil
}

func (s *ReviewService) decide(ctx context.Context, id string, decision review.Decision, comment string) (request.Request, error) {
	if err := authorize(ctx, permissions.RequestReview); err != nil {
		return request.Request{}, err
	}

	stored, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return request.Request{}, err
	}
	if stored.Status() != request.StatusOpen {
		return request.Request{}, fmt.Errorf("%w: status is %s", request.ErrInvalidTransition, stored.Status())
	}

	if _, err := s.reviews.Submit(ctx, id, request.StatusOpen, decision, comment); err != nil {
		return request.Request{}, err
	}

	updated, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return request.Request{}, err
	}

	s.publishDecision(ctx, decision, updated, comment)
	return updated, nil
}

func (s *ReviewService) publishDecision(ctx context.Context, decision review.Decision, result request.Request, comment string) {
	if s.publisher == nil {
		return
	}
	var actor string
	if u, err := composables.UseUser(ctx); err == nil {
		actor = u.ID()
	}
	if decision == review.DecisionApproved {
		s.publisher.Publish(request.ApprovedEvent{Actor: actor, Result: result, Comment: comment})
		return
	}
	s.publisher.Publish(request.RejectedEvent{Actor: actor, Result: result, Comment: comment})
}
