package request

// Domain events published after a successful persistence write. Actor is
// the user id of whoever performed the operation.

type CreatedEvent struct {
	Actor  string
	Result Request
}

type UpdatedEvent struct {
	Actor  string
	Result Request
}

type ApprovedEvent struct {
	Actor   string
	Result  Request
	Comment string
}

type RejectedEvent struct {
	Actor   string
	Result  Request
	Comment string
}

type BudgetApprovedEvent struct {
	Actor  string
	Result Request
}
