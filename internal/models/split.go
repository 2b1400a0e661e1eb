package models

import (
	"fmt"
	"time"
)

// SplitType selects how an expense amount is divided among its splits.
type SplitType string

const (
	// SplitEqual divides the amount evenly; per-split amounts are derived, not stored.
	SplitEqual SplitType = "equal"
	// SplitExact uses each split's Amount verbatim.
	SplitExact SplitType = "exact"
	// SplitPercentage uses each split's Percentage of the amount.
	SplitPercentage SplitType = "percentage"
)

// Valid reports whether t is one of the known split types.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitExact, SplitPercentage:
		return true
	}
	return false
}

// Category classifies an expense.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryRent          Category = "rent"
	CategoryUtilities     Category = "utilities"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryGroceries     Category = "groceries"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryFood,
	CategoryRent,
	CategoryUtilities,
	CategoryTransport,
	CategoryEntertainment,
	CategoryGroceries,
	CategoryShopping,
	CategoryHealth,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw string to a Category.
// An empty string maps to CategoryOther.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

// Split is the portion of an expense attributed to one participant.
// Exactly one of Amount/Percentage is set, depending on the expense's SplitType;
// both are nil for equal splits.
type Split struct {
	ParticipantID string   `json:"participantId"`
	Amount        *float64 `json:"amount,omitempty"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

// Expense represents a shared cost paid by one participant.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is what the money was spent on (e.g., "Dinner").
	Description string `json:"description"`

	// Amount is the positive total paid.
	Amount float64 `json:"amount"`

	// PaidBy is the participant ID of the payer. The payer need not appear in Splits.
	PaidBy string `json:"paidBy"`

	// Date is when the expense happened.
	Date time.Time `json:"date"`

	Category  Category  `json:"category"`
	SplitType SplitType `json:"splitType"`

	// Splits has one entry per participant sharing the expense, in entry order.
	Splits []Split `json:"splits"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"groupId"`

	// Notes is an optional free-text note.
	Notes string `json:"notes,omitempty"`
}

// Balance is a recommended transfer that settles part of a group's debts.
// It is transient and recomputed from the group's expenses on every mutation.
type Balance struct {
	// From is the debtor's participant ID.
	From string `json:"from"`

	// To is the creditor's participant ID.
	To string `json:"to"`

	// Amount is the positive amount to transfer.
	Amount float64 `json:"amount"`
}
