package request

import (
	"strings"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
)

// BudgetSource tells where a displayed budget figure comes from.
type BudgetSource string

const (
	SourceNone     BudgetSource = ""
	SourceEstimate BudgetSource = "Estimate"
	SourceApproved BudgetSource = "Approved"
)

// Request is a sponsorship request for an event. Mutators return updated
// copies; the stored value never changes in place.
type Request struct {
	id             string
	title          string
	description    string
	status         Status
	submittedAt    time.Time
	budgetEstimate budget.Amount
	approvedBudget budget.Amount
}

func New(title, description string, estimate budget.Amount, submittedAt time.Time) Request {
	return Request{
		title:          strings.TrimSpace(title),
		description:    strings.TrimSpace(description),
		status:         StatusOpen,
		submittedAt:    submittedAt,
		budgetEstimate: estimate,
		approvedBudget: budget.None(),
	}
}

func Hydrate(
	id string,
	title string,
	description string,
	status Status,
	submittedAt time.Time,
	estimate budget.Amount,
	approved budget.Amount,
) Request {
	return Request{
		id:             id,
		title:          strings.TrimSpace(title),
		description:    strings.TrimSpace(description),
		status:         status,
		submittedAt:    submittedAt,
		budgetEstimate: estimate,
		approvedBudget: approved,
	}
}

func (r Request) ID() string                    { return r.id }
func (r Request) Title() string                 { return r.title }
func (r Request) Description() string           { return r.description }
func (r Request) Status() Status                { return r.status }
func (r Request) SubmittedAt() time.Time        { return r.submittedAt }
func (r Request) BudgetEstimate() budget.Amount { return r.budgetEstimate }
func (r Request) ApprovedBudget() budget.Amount { return r.approvedBudget }
func (r Request) IsZero() bool                  { return r.id == "" && r.title == "" }

func (r Request) WithID(id string) Request {
	r.id = id
	return r
}

func (r Request) WithDetails(title, description string, estimate budget.Amount) Request {
	r.title = strings.TrimSpace(title)
	r.description = strings.TrimSpace(description)
	r.budgetEstimate = estimate
	return r
}

func (r Request) WithStatus(s Status) Request {
	r.status = s
	return r
}

func (r Request) WithApprovedBudget(a budget.Amount) Request {
	r.approvedBudget = a
	return r
}

// DisplayBudget picks the figure shown to users: the approved budget wins
// over the estimate, and an unset pair shows nothing.
func (r Request) DisplayBudget() (budget.Amount, BudgetSource) {
	if r.approvedBudget.IsSet() {
		return r.approvedBudget, SourceApproved
	}
	if r.budgetEstimate.IsSet() {
		return r.budgetEstimate, SourceEstimate
	}
	return budget.None(), SourceNone
}
