package sponsorship

import (
	"context"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/review"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/infrastructure/persistence"
	"github.com/ghazalrb98/sep/modules/sponsorship/infrastructure/remote"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/controllers"
	"github.com/ghazalrb98/sep/modules/sponsorship/seed"
	"github.com/ghazalrb98/sep/modules/sponsorship/services"
	"github.com/ghazalrb98/sep/pkg/application"
	"github.com/ghazalrb98/sep/pkg/configuration"
)

func NewModule() *Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	var (
		requests request.Repository
		reviews  review.Repository
		users    user.Repository
	)
	if conf.Repository.Driver == "memory" {
		requestRepo := persistence.NewRequestRepository()
		if err := seed.Requests(context.Background(), requestRepo); err != nil {
			return err
		}
		requests = requestRepo
		reviews = persistence.NewReviewRepository(requestRepo)
		users = persistence.NewUserRepository(seed.Users())
	} else {
		client := remote.NewClient(conf.Repository.BaseURL, conf.Repository.Token, conf.Repository.Timeout)
		requests = remote.NewRequestRepository(client)
		reviews = remote.NewReviewRepository(client)
		users = remote.NewUserRepository(client)
	}

	bus := app.EventPublisher()
	authService := services.NewAuthService(users, conf.SessionTTL)
	app.RegisterServices(
		authService,
		services.NewRequestService(requests, bus),
		services.NewReviewService(requests, reviews, bus),
		services.NewBudgetService(requests, bus),
	)

	app.RegisterControllers(
		controllers.NewAuthController(app),
		controllers.NewRequestController(app, authService),
	)

	registerEventLog(app)
	return nil
}

func (m *Module) Name() string {
	return "sponsorship"
}

// registerEventLog subscribes audit-style log lines to the domain events.
func registerEventLog(app application.Application) {
	log := app.Logger()
	if log == nil {
		return
	}
	bus := app.EventPublisher()

	bus.Subscribe(func(e request.CreatedEvent) {
		log.WithField("request", e.Result.ID()).WithField("actor", e.Actor).Info("sponsorship request created")
	})
	bus.Subscribe(func(e request.UpdatedEvent) {
		log.WithField("request", e.Result.ID()).WithField("actor", e.Actor).Info("sponsorship request updated")
	})
	bus.Subscribe(func(e request.ApprovedEvent) {
		log.WithField("request", e.Result.ID()).WithField("actor", e.Actor).Info("sponsorship request approved")
	})
	bus.Subscribe(func(e request.RejectedEvent) {
		log.WithField("request", e.Result.ID()).WithField("actor", e.Actor).Info("sponsorship request rejected")
	})
	bus.Subscribe(func(e request.BudgetApprovedEvent) {
		log.WithField("request", e.Result.ID()).WithField("actor", e.Actor).Info("approved budget set")
	})
}
