package remote

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/review"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
)

// wireID tolerates backends that serialize ids as JSON strings or numbers.
// It always marshals back as a string.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = wireID(n.String())
	return nil
}

func (id wireID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Wire shapes of the events backend. Budget fields use zero for "not set";
// timestamps are RFC 3339.

type eventModel struct {
	ID             wireID `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	BudgetEstimate int64  `json:"budgetEstimate"`
	ApprovedBudget int64  `json:"approvedBudget"`
	Status         int    `json:"status"`
	SubmittedAt    string `json:"submittedAt"`
}

type createEventModel struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Budget      int64  `json:"budget"`
}

type reviewModel struct {
	ID          wireID `json:"id"`
	EventID     wireID `json:"eventId"`
	Comments    string `json:"comments"`
	SubmittedAt string `json:"submittedAt"`
}

type userModel struct {
	ID    wireID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

type loginModel struct {
	Token string `json:"token"`
}

func parseWireTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	return time.Time{}
}

func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toDomainRequest(m eventModel) (request.Request, error) {
	estimate, err := budget.FromWire(m.BudgetEstimate)
	if err != nil {
		return request.Request{}, err
	}
	approved, err := budget.FromWire(m.ApprovedBudget)
	if err != nil {
		return request.Request{}, err
	}
	return request.Hydrate(
		string(m.ID),
		m.Title,
		m.Description,
		request.Status(m.Status),
		parseWireTime(m.SubmittedAt),
		estimate,
		approved,
	), nil
}

func toEventModel(r request.Request) eventModel {
	return eventModel{
		ID:             wireID(r.ID()),
		Title:          r.Title(),
		Description:    r.Description(),
		BudgetEstimate: r.BudgetEstimate().Wire(),
		ApprovedBudget: r.ApprovedBudget().Wire(),
		Status:         int(r.Status()),
		SubmittedAt:    formatWireTime(r.SubmittedAt()),
	}
}

func toDomainReview(m reviewModel, decision review.Decision) review.Review {
	return review.Hydrate(
		string(m.ID),
		string(m.EventID),
		decision,
		m.Comments,
		parseWireTime(m.SubmittedAt),
	)
}

func toDomainUser(m userModel) (user.User, error) {
	email, err := internet.NewEmail(m.Email)
	if err != nil {
		return user.User{}, err
	}
	return user.New(string(m.ID), m.Name, email, role.Code(m.Role)), nil
}
