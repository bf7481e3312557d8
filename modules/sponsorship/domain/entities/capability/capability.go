package capability

import "github.com/google/uuid"

// Capability is a single named grant checked by the service layer before an
// operation is allowed to proceed.
type Capability struct {
	ID       uuid.UUID
	Name     string
	Resource Resource
	Action   Action
}

type (
	Resource string
	Action   string
)

const (
	ResourceRequest Resource = "request"
	ResourceBudget  Resource = "budget"
)

const (
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionReview  Action = "review"
	ActionApprove Action = "approve"
)
