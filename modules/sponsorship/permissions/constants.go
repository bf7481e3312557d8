package permissions

import (
	"github.com/google/uuid"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/capability"
)

const (
	ResourceRequest = capability.ResourceRequest
	ResourceBudget  = capability.ResourceBudget
)

var (
	RequestCreate = &capability.Capability{
		ID:       uuid.MustParse("9f8b7c5e-2d41-4a6b-9c3e-5d8f1a2b3c4d"),
		Name:     "Request.Create",
		Resource: ResourceRequest,
		Action:   capability.ActionCreate,
	}
	RequestEdit = &capability.Capability{
		ID:       uuid.MustParse("1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"),
		Name:     "Request.Edit",
		Resource: ResourceRequest,
		Action:   capability.ActionEdit,
	}
	RequestReview = &capability.Capability{
		ID:       uuid.MustParse("7c6d5e4f-3a2b-4c1d-8e9f-0a1b2c3d4e5f"),
		Name:     "Request.Review",
		Resource: ResourceRequest,
		Action:   capability.ActionReview,
	}
	BudgetApprove = &capability.Capability{
		ID:       uuid.MustParse("3e4f5a6b-7c8d-4e9f-a0b1-c2d3e4f5a6b7"),
		Name:     "Budget.Approve",
		Resource: ResourceBudget,
		Action:   capability.ActionApprove,
	}
)

var Capabilities = []*capability.Capability{
	RequestCreate,
	RequestEdit,
	RequestReview,
	BudgetApprove,
}
