package seed

import (
	"context"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
	"github.com/ghazalrb98/sep/modules/sponsorship/infrastructure/persistence"
)

// Users returns one directory entry per role for the in-memory driver.
func Users() []user.User {
	return []user.User{
		user.New("1", "Clara Lund", internet.MustParseEmail("clara@sep.se"), role.CustomerService),
		user.New("2", "Sven Ek", internet.MustParseEmail("sven@sep.se"), role.SeniorCustomerService),
		user.New("3", "Anna Berg", internet.MustParseEmail("anna@sep.se"), role.AdministrationManager),
		user.New("4", "Frida Holm", internet.MustParseEmail("frida@sep.se"), role.FinancialManager),
		user.New("5", "Per Nilsson", internet.MustParseEmail("per@sep.se"), role.ProductionManager),
		user.New("6", "Sara Lind", internet.MustParseEmail("sara@sep.se"), role.ServiceManager),
		user.New("7", "Hanna Roos", internet.MustParseEmail("hanna@sep.se"), role.HRManager),
		user.New("8", "Mats Dahl", internet.MustParseEmail("mats@sep.se"), role.MarketingManager),
		user.New("9", "Vera Palm", internet.MustParseEmail("vera@sep.se"), role.VicePresident),
		user.New("10", "Oscar Falk", internet.MustParseEmail("oscar@sep.se"), role.CustomerServiceOfficer),
	}
}

// Requests loads a few sample requests into the in-memory store so the
// memory driver starts with something to review.
func Requests(ctx context.Context, repo *persistence.RequestRepository) error {
	estimate := func(kronor int64) budget.Amount {
		a, err := budget.NewAmount(kronor)
		if err != nil {
			panic(err)
		}
		return a
	}

	samples := []request.Request{
		request.New(
			"Summer jazz festival",
			"Sponsoring the main stage of the city jazz festival.",
			estimate(1000),
			time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		),
		request.New(
			"Student career fair",
			"Booth and branded giveaways at the spring career fair.",
			estimate(300),
			time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC),
		),
		request.New(
			"Charity fun run",
			"Water stations along the 10k route.",
			budget.None(),
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		),
	}

	for _, sample := range samples {
		if _, err := repo.Create(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}
