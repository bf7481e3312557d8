package request

import "github.com/ghazalrb98/sep/pkg/serrors"

var (
	ErrNotFound = serrors.NewError("REQUEST_NOT_FOUND", "sponsorship request not found")

	// ErrInvalidTransition signals a review decision against a request that
	// is no longer Open.
	ErrInvalidTransition = serrors.NewError("REQUEST_INVALID_TRANSITION", "request is not open for review")

	// ErrInvalidState signals a budget approval against a request that is
	// not In Progress.
	ErrInvalidState = serrors.NewError("REQUEST_INVALID_STATE", "request is not in progress")

	// ErrConcurrentModification signals a precondition write that lost a
	// race: the request changed between read and write.
	ErrConcurrentModification = serrors.NewError("REQUEST_CONCURRENT_MODIFICATION", "request was modified concurrently")
)
