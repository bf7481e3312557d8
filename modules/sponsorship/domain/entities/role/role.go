package role

import (
	"fmt"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/capability"
	"github.com/ghazalrb98/sep/modules/sponsorship/permissions"
)

// Code identifies a role as stored in the directory of users.
type Code int

const (
	CustomerService        Code = 1
	SeniorCustomerService  Code = 2
	AdministrationManager  Code = 3
	FinancialManager       Code = 4
	ProductionManager      Code = 5
	ServiceManager         Code = 6
	HRManager              Code = 7
	MarketingManager       Code = 8
	VicePresident          Code = 9
	CustomerServiceOfficer Code = 10
)

// Role couples a role code with its display label and capability grants.
// Resolve never fails: unknown codes yield a role with no capabilities, so
// an unrecognised directory entry can log in but cannot act.
type Role struct {
	code         Code
	short        string
	label        string
	capabilities []*capability.Capability
}

var registry = map[Code]Role{
	CustomerService: {
		code:  CustomerService,
		short: "CS",
		label: "Customer Service",
		capabilities: []*capability.Capability{
			permissions.RequestCreate,
			permissions.RequestEdit,
		},
	},
	SeniorCustomerService: {
		code:  SeniorCustomerService,
		short: "SCS",
		label: "Senior Customer Service",
		capabilities: []*capability.Capability{
			permissions.RequestCreate,
			permissions.RequestEdit,
			permissions.RequestReview,
		},
	},
	AdministrationManager: {
		code:  AdministrationManager,
		short: "AM",
		label: "Administration Manager",
	},
	FinancialManager: {
		code:  FinancialManager,
		short: "FM",
		label: "Financial Manager",
		capabilities: []*capability.Capability{
			permissions.RequestCreate,
			permissions.BudgetApprove,
		},
	},
	ProductionManager: {
		code:  ProductionManager,
		short: "PM",
		label: "Production Manager",
	},
	ServiceManager: {
		code:  ServiceManager,
		short: "SM",
		label: "Service Manager",
	},
	HRManager: {
		code:  HRManager,
		short: "HR",
		label: "HR Manager",
	},
	MarketingManager: {
		code:  MarketingManager,
		short: "MM",
		label: "Marketing Manager",
	},
	VicePresident: {
		code:  VicePresident,
		short: "VP",
		label: "Vice President",
	},
	CustomerServiceOfficer: {
		code:  CustomerServiceOfficer,
		short: "CSO",
		label: "Customer Service Officer",
		capabilities: []*capability.Capability{
			permissions.RequestReview,
		},
	},
}

func Resolve(code Code) Role {
	if r, ok := registry[code]; ok {
		return r
	}
	return Role{
		code:  code,
		label: fmt.Sprintf("Role %d", code),
	}
}

func (r Role) Code() Code {
	return r.code
}

func (r Role) Short() string {
	return r.short
}

func (r Role) Label() string {
	return r.label
}

func (r Role) Capabilities() []*capability.Capability {
	out := make([]*capability.Capability, len(r.capabilities))
	copy(out, r.capabilities)
	return out
}

// Can reports whether the role holds the given capability.
func (r Role) Can(c *capability.Capability) bool {
	for _, granted := range r.capabilities {
		if granted.ID == c.ID {
			return true
		}
	}
	return false
}
