package services

import (
	"context"
	"fmt"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/capability"
	"github.com/ghazalrb98/sep/pkg/composables"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

// ErrForbidden is returned when the current user lacks the capability an
// operation requires. The refusal is explicit rather than hidden from the
// caller.
var ErrForbidden = serrors.NewError("SPONSORSHIP_FORBIDDEN", "you are not allowed to perform this action")

func authorize(ctx context.Context, cap *capability.Capability) error {
	currentUser, err := composables.UseUser(ctx)
	if err != nil {
		return err
	}
	if !currentUser.Can(cap) {
		return fmt.Errorf("%w: %s requires %s", ErrForbidden, currentUser.Role().Label(), cap.Name)
	}
	return nil
}
