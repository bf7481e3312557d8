package services

import (
	"context"
	"errors"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
	"github.com/ghazalrb98/sep/modules/sponsorship/permissions"
	"github.com/ghazalrb98/sep/pkg/composables"
	"github.com/ghazalrb98/sep/pkg/eventbus"
)

type RequestService struct {
	repo      request.Repository
	publisher eventbus.EventBus
	clock     func() time.Time
}

func NewRequestService(repo request.Repository, publisher eventbus.EventBus) *RequestService {
	return &RequestService{
		repo:      repo,
		publisher: publisher,
		clock:     time.Now,
	}
}

// WithClock replaces the submission timestamp source, used by tests.
func (s *RequestService) WithClock(clock func() time.Time) *RequestService {
	s.clock = clock
	return s
}

func (s *RequestService) GetAll(ctx context.Context) ([]request.Request, error) {
	if _, err := composables.UseUser(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

func (s *RequestService) GetByID(ctx context.Context, id string) (request.Request, error) {
	if _, err := composables.UseUser(ctx); err != nil {
		return request.Request{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *RequestService) Create(ctx context.Context, dto *request.CreateDTO) (request.Request, error) {
	if dto == nil {
		return request.Request{}, errors.New("missing dto")
	}
	if err := authorize(ctx, permissions.RequestCreate); err != nil {
		return request.Request{}, err
	}

	dto.Normalize()
	estimate, err := budget.FromWire(dto.BudgetEstimate)
	if err != nil {
		return request.Request{}, err
	}

	created, err := s.repo.Create(ctx, request.New(dto.Title, dto.Description, estimate, s.clock()))
	if err != nil {
		return request.Request{}, err
	}

	s.publish(ctx, func(actor string) interface{} {
		return request.CreatedEvent{Actor: actor, Result: created}
	})
	return created, nil
}

// Edit replaces title, description and estimate. The stored status and
// approved budget are preserved. Status is deliberately not guarded here:
// editors may touch requests in any state.
func (s *RequestService) Edit(ctx context.Context, id string, dto *request.UpdateDTO) (request.Request, error) {
	if dto == nil {
		return request.Request{}, errors.New("missing dto")
	}
	if err := authorize(ctx, permissions.RequestEdit); err != nil {
		return request.Request{}, err
	}

	dto.Normalize()
	estimate, err := budget.FromWire(dto.BudgetEstimate)
	if err != nil {
		return request.Request{}, err
	}

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return request.Request{}, err
	}

	updated, err := s.repo.Update(ctx, stored.WithDetails(dto.Title, dto.Description, estimate))
	if err != nil {
		return request.Request{}, err
	}

	s.publish(ctx, func(actor string) interface{} {
		return request.UpdatedEvent{Actor: actor, Result: updated}
	})
	return updated, nil
}

func (s *RequestService) publish(ctx context.Context, build func(actor string) interface{}) {
	if s.publisher == nil {
		return
	}
	var actor string
	if u, err := composables.UseUser(ctx); err == nil {
		actor = u.ID()
	}
	s.publisher.Publish(build(actor))
}
