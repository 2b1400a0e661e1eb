package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error caused by invalid caller input.
// A mutation that fails with it leaves the ledger unchanged.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrNotGroupMember     = errors.New("participant is not a member of the active group")
	ErrDuplicateMember    = errors.New("participant listed more than once")

	ErrExpenseNotFound = errors.New("expense not found")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
