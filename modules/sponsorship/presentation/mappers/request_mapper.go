package mappers

import (
	"time"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/viewmodels"
)

const dateLayout = "2006-01-02"

func RequestToListItem(r request.Request) *viewmodels.RequestListItem {
	meta := r.Status().Meta()
	amount, source := r.DisplayBudget()
	return &viewmodels.RequestListItem{
		ID:            r.ID(),
		Title:         r.Title(),
		Status:        meta.Label,
		StatusTone:    meta.Tone,
		DisplayBudget: amount.Format(),
		BudgetSource:  string(source),
		SubmittedAt:   formatDate(r.SubmittedAt()),
	}
}

func RequestToDetail(r request.Request, reviewComment string) *viewmodels.RequestDetail {
	meta := r.Status().Meta()
	amount, source := r.DisplayBudget()
	return &viewmodels.RequestDetail{
		ID:             r.ID(),
		Title:          r.Title(),
		Description:    r.Description(),
		Status:         meta.Label,
		StatusTone:     meta.Tone,
		StatusCode:     int(r.Status()),
		BudgetEstimate: r.BudgetEstimate().Format(),
		ApprovedBudget: r.ApprovedBudget().Format(),
		DisplayBudget:  amount.Format(),
		BudgetSource:   string(source),
		ReviewComment:  reviewComment,
		SubmittedAt:    formatDate(r.SubmittedAt()),
	}
}

func UserToViewModel(u user.User) *viewmodels.User {
	return &viewmodels.User{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email().Value(),
		Role:     u.Role().Label(),
		RoleCode: int(u.Role().Code()),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
