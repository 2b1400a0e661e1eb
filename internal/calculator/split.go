package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmynk/billease/internal/models"
)

// Tolerance is the absolute slack applied to currency and percentage comparisons.
// Amounts within Tolerance of a boundary are treated as equal to it.
const Tolerance = 0.01

var (
	ErrNoSplits             = errors.New("at least one participant must share the expense")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrNegativeSplit        = errors.New("split values cannot be negative")
	ErrMissingSplitAmount   = errors.New("exact amount required for all participants")
	ErrMissingPercentage    = errors.New("percentage required for all participants")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrSplitTotalMismatch   = errors.New("split amounts must equal the total")
	ErrPercentageMismatch   = errors.New("percentages must equal 100%")
	ErrUnknownSplitType     = errors.New("unknown split type")
)

// ValidateSplits checks that splits reconcile with amount under the given split type.
// It is the validating boundary that ResolveShares relies on.
func ValidateSplits(amount float64, splitType models.SplitType, splits []models.Split) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if len(splits) == 0 {
		return ErrNoSplits
	}

	seen := make(map[string]bool, len(splits))
	for _, s := range splits {
		if seen[s.ParticipantID] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, s.ParticipantID)
		}
		seen[s.ParticipantID] = true
	}

	switch splitType {
	case models.SplitEqual:
		return nil

	case models.SplitExact:
		var total float64
		for _, s := range splits {
			if s.Amount == nil {
				return ErrMissingSplitAmount
			}
			if *s.Amount < 0 {
				return ErrNegativeSplit
			}
			total += *s.Amount
		}
		if math.Abs(total-amount) > Tolerance {
			return fmt.Errorf("%w: got %.2f, want %.2f", ErrSplitTotalMismatch, total, amount)
		}
		return nil

	case models.SplitPercentage:
		var total float64
		for _, s := range splits {
			if s.Percentage == nil {
				return ErrMissingPercentage
			}
			if *s.Percentage < 0 || *s.Percentage > 100 {
				return ErrPercentageOutOfRange
			}
			total += *s.Percentage
		}
		if math.Abs(total-100) > Tolerance {
			return fmt.Errorf("%w: got %.2f", ErrPercentageMismatch, total)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownSplitType, splitType)
	}
}

// Share is one participant's resolved portion of an expense.
type Share struct {
	ParticipantID string
	Amount        float64
}

// ResolveShares converts an expense's split policy into the amount each split
// participant owes, in split order.
//
// It does not validate: an exact split whose amounts do not reconcile is resolved
// verbatim. Residual cents from equal splits are not redistributed. A missing
// amount or percentage resolves to zero.
func ResolveShares(expense models.Expense) []Share {
	shares := make([]Share, len(expense.Splits))
	if len(expense.Splits) == 0 {
		return shares
	}

	perPerson := expense.Amount / float64(len(expense.Splits))
	for i, s := range expense.Splits {
		var owed float64
		switch expense.SplitType {
		case models.SplitExact:
			if s.Amount != nil {
				owed = *s.Amount
			}
		case models.SplitPercentage:
			if s.Percentage != nil {
				owed = expense.Amount * *s.Percentage / 100
			}
		default:
			owed = perPerson
		}
		shares[i] = Share{ParticipantID: s.ParticipantID, Amount: owed}
	}
	return shares
}
