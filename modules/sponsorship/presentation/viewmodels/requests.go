package viewmodels

type RequestListItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	StatusTone    string `json:"statusTone"`
	DisplayBudget string `json:"displayBudget,omitempty"`
	BudgetSource  string `json:"budgetSource,omitempty"`
	SubmittedAt   string `json:"submittedAt,omitempty"`
}

type RequestDetail struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	StatusTone     string `json:"statusTone"`
	StatusCode     int    `json:"statusCode"`
	BudgetEstimate string `json:"budgetEstimate,omitempty"`
	ApprovedBudget string `json:"approvedBudget,omitempty"`
	DisplayBudget  string `json:"displayBudget,omitempty"`
	BudgetSource   string `json:"budgetSource,omitempty"`
	ReviewComment  string `json:"reviewComment,omitempty"`
	SubmittedAt    string `json:"submittedAt,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	RoleCode int    `json:"roleCode"`
}
