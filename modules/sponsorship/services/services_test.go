package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
	"github.com/ghazalrb98/sep/modules/sponsorship/infrastructure/persistence"
	"github.com/ghazalrb98/sep/modules/sponsorship/services"
	"github.com/ghazalrb98/sep/pkg/composables"
)

type fixture struct {
	requests *persistence.RequestRepository
	reviews  *persistence.ReviewRepository
	request  *services.RequestService
	review   *services.ReviewService
	budget   *services.BudgetService
}

func newFixture() *fixture {
	requests := persistence.NewRequestRepository()
	reviews := persistence.NewReviewRepository(requests)
	return &fixture{
		requests: requests,
		reviews:  reviews,
		request:  services.NewRequestService(requests, nil),
		review:   services.NewReviewService(requests, reviews, nil),
		budget:   services.NewBudgetService(requests, nil),
	}
}

func asRole(code role.Code) context.Context {
	u := user.New(
		fmt.Sprintf("%d", code),
		fmt.Sprintf("User %d", code),
		internet.MustParseEmail(fmt.Sprintf("user%d@sep.se", code)),
		code,
	)
	return composables.WithUser(context.Background(), u)
}

func (f *fixture) createOpen(t *testing.T, ctx context.Context) request.Request {
	t.Helper()
	created, err := f.request.Create(ctx, &request.CreateDTO{
		Title:          "Jazz festival",
		Description:    "Stage sponsorship",
		BudgetEstimate: 300,
	})
	require.NoError(t, err)
	return created
}

func TestRequestService_Create(t *testing.T) {
	t.Run("Customer_Service_Creates_Open_Request", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))

		assert.Equal(t, "Jazz festival", created.Title())
		assert.Equal(t, "Stage sponsorship", created.Description())
		assert.Equal(t, request.StatusOpen, created.Status())
		assert.Equal(t, int64(300), created.BudgetEstimate().Value())
		assert.False(t, created.ApprovedBudget().IsSet())
	})

	t.Run("Reviewer_Cannot_Create", func(t *testing.T) {
		f := newFixture()
		_, err := f.request.Create(asRole(role.CustomerServiceOfficer), &request.CreateDTO{Title: "Gala"})
		assert.ErrorIs(t, err, services.ErrForbidden)

		all, err := f.requests.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture()
		_, err := f.request.Create(context.Background(), &request.CreateDTO{Title: "Gala"})
		assert.ErrorIs(t, err, composables.ErrNoUser)
	})
}

func TestRequestService_Edit(t *testing.T) {
	t.Run("Editor_Replaces_Details", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))

		updated, err := f.request.Edit(asRole(role.SeniorCustomerService), created.ID(), &request.UpdateDTO{
			Title:          "Jazz festival (revised)",
			Description:    "Two stages",
			BudgetEstimate: 450,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jazz festival (revised)", updated.Title())
		assert.Equal(t, int64(450), updated.BudgetEstimate().Value())
		assert.Equal(t, request.StatusOpen, updated.Status())
	})

	t.Run("Edit_Is_Not_Status_Guarded", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))
		_, err := f.review.Reject(asRole(role.CustomerServiceOfficer), created.ID(), "over budget")
		require.NoError(t, err)

		updated, err := f.request.Edit(asRole(role.CustomerService), created.ID(), &request.UpdateDTO{
			Title: "Jazz festival (appeal)",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StatusRejected, updated.Status())
	})

	t.Run("Financial_Manager_Cannot_Edit", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))

		_, err := f.request.Edit(asRole(role.FinancialManager), created.ID(), &request.UpdateDTO{Title: "x"})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestReviewService_Approve(t *testing.T) {
	t.Run("Reviewer_Moves_Open_To_InProgress", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))
		cso := asRole(role.CustomerServiceOfficer)

		updated, err := f.review.Approve(cso, created.ID(), "ok")
		require.NoError(t, err)
		assert.Equal(t, request.StatusInProgress, updated.Status())

		comment, err := f.review.Comment(cso, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "ok", comment)
	})

	t.Run("Customer_Service_Cannot_Review", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))

		_, err := f.review.Approve(asRole(role.CustomerService), created.ID(), "ok")
		assert.ErrorIs(t, err, services.ErrForbidden)

		got, err := f.requests.GetByID(context.Background(), created.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusOpen, got.Status())
	})

	t.Run("Non_Open_Request", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))
		cso := asRole(role.CustomerServiceOfficer)

		_, err := f.review.Approve(cso, created.ID(), "first")
		require.NoError(t, err)

		_, err = f.review.Approve(cso, created.ID(), "second")
		assert.ErrorIs(t, err, request.ErrInvalidTransition)
	})
}

func TestReviewService_Reject(t *testing.T) {
	f := newFixture()
	created := f.createOpen(t, asRole(role.SeniorCustomerService))
	scs := asRole(role.SeniorCustomerService)

	updated, err := f.review.Reject(scs, created.ID(), "insufficient detail")
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, updated.Status())

	// The comment stays readable after a rejection.
	comment, err := f.review.Comment(scs, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "insufficient detail", comment)
}

func TestReviewService_ConcurrentApproves(t *testing.T) {
	f := newFixture()
	created := f.createOpen(t, asRole(role.CustomerService))
	cso := asRole(role.CustomerServiceOfficer)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.review.Approve(cso, created.ID(), fmt.Sprintf("reviewer %d", i))
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		lostRace := errors.Is(err, request.ErrConcurrentModification) ||
			errors.Is(err, request.ErrInvalidTransition)
		assert.Truef(t, lostRace, "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	got, err := f.requests.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, request.StatusInProgress, got.Status())
}

func TestBudgetService_SetApprovedBudget(t *testing.T) {
	t.Run("Financial_Manager_On_InProgress", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))
		_, err := f.review.Approve(asRole(role.CustomerServiceOfficer), created.ID(), "ok")
		require.NoError(t, err)

		updated, err := f.budget.SetApprovedBudget(asRole(role.FinancialManager), created.ID(), 500)
		require.NoError(t, err)

		amount, source := updated.DisplayBudget()
		assert.Equal(t, request.SourceApproved, source)
		assert.Equal(t, "500 kr", amount.Format())
	})

	t.Run("Open_Request_Is_Invalid_State", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))

		_, err := f.budget.SetApprovedBudget(asRole(role.FinancialManager), created.ID(), 500)
		assert.ErrorIs(t, err, request.ErrInvalidState)
	})

	t.Run("Customer_Service_Forbidden", func(t *testing.T) {
		f := newFixture()
		created := f.createOpen(t, asRole(role.CustomerService))
		_, err := f.review.Approve(asRole(role.CustomerServiceOfficer), created.ID(), "ok")
		require.NoError(t, err)

		_, err = f.budget.SetApprovedBudget(asRole(role.CustomerService), created.ID(), 500)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestAuthService(t *testing.T) {
	alice := user.New("1", "Alice", internet.MustParseEmail("alice@sep.se"), role.CustomerService)
	users := persistence.NewUserRepository([]user.User{alice})

	t.Run("Login_And_Authenticate", func(t *testing.T) {
		svc := services.NewAuthService(users, time.Hour)
		token, u, err := svc.Login(context.Background(), "alice@sep.se")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "1", u.ID())

		got, err := svc.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID())
	})

	t.Run("Invalid_Email", func(t *testing.T) {
		svc := services.NewAuthService(users, time.Hour)
		_, _, err := svc.Login(context.Background(), "not-an-email")
		assert.ErrorIs(t, err, internet.ErrInvalidEmail)
	})

	t.Run("Unknown_Email", func(t *testing.T) {
		svc := services.NewAuthService(users, time.Hour)
		_, _, err := svc.Login(context.Background(), "ghost@sep.se")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("Expired_Session", func(t *testing.T) {
		now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
		svc := services.NewAuthService(users, time.Hour).WithClock(func() time.Time { return now })

		token, _, err := svc.Login(context.Background(), "alice@sep.se")
		require.NoError(t, err)

		now = now.Add(2 * time.Hour)
		_, err = svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, services.ErrInvalidSession)
	})

	t.Run("Unknown_Token", func(t *testing.T) {
		svc := services.NewAuthService(users, time.Hour)
		_, err := svc.Authenticate(context.Background(), "bogus")
		assert.ErrorIs(t, err, services.ErrInvalidSession)
	})
}
