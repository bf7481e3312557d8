package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/permissions"
)

func TestResolve_Grants(t *testing.T) {
	t.Run("Customer_Service", func(t *testing.T) {
		r := role.Resolve(role.CustomerService)
		assert.Equal(t, "Customer Service", r.Label())
		assert.True(t, r.Can(permissions.RequestCreate))
		assert.True(t, r.Can(permissions.RequestEdit))
		assert.False(t, r.Can(permissions.RequestReview))
		assert.False(t, r.Can(permissions.BudgetApprove))
	})

	t.Run("Senior_Customer_Service", func(t *testing.T) {
		r := role.Resolve(role.SeniorCustomerService)
		assert.True(t, r.Can(permissions.RequestCreate))
		assert.True(t, r.Can(permissions.RequestEdit))
		assert.True(t, r.Can(permissions.RequestReview))
		assert.False(t, r.Can(permissions.BudgetApprove))
	})

	t.Run("Customer_Service_Officer", func(t *testing.T) {
		r := role.Resolve(role.CustomerServiceOfficer)
		assert.True(t, r.Can(permissions.RequestReview))
		assert.False(t, r.Can(permissions.RequestCreate))
		assert.False(t, r.Can(permissions.RequestEdit))
	})

	t.Run("Financial_Manager", func(t *testing.T) {
		r := role.Resolve(role.FinancialManager)
		assert.True(t, r.Can(permissions.RequestCreate))
		assert.True(t, r.Can(permissions.BudgetApprove))
		assert.False(t, r.Can(permissions.RequestReview))
		assert.False(t, r.Can(permissions.RequestEdit))
	})
}

func TestResolve_UngrantedRolesHoldNothing(t *testing.T) {
	for _, code := range []role.Code{
		role.AdministrationManager,
		role.ProductionManager,
		role.ServiceManager,
		role.HRManager,
		role.MarketingManager,
		role.VicePresident,
	} {
		r := role.Resolve(code)
		assert.Emptyf(t, r.Capabilities(), "role %d should have no capabilities", code)
	}
}

func TestResolve_UnknownCodeFailsClosed(t *testing.T) {
	r := role.Resolve(role.Code(42))
	assert.Equal(t, role.Code(42), r.Code())
	assert.Equal(t, "Role 42", r.Label())
	assert.Empty(t, r.Capabilities())
	for _, c := range permissions.Capabilities {
		assert.False(t, r.Can(c))
	}
}
