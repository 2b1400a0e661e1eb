// Package api defines the billease.v1 wire messages and the Connect handler and
// client for LedgerService.
//
// Messages are plain structs serialized as JSON. Field names match the
// persisted records so a browser client can use either interchangeably.
package api

import "time"

type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Split carries Amount for exact splits and Percentage for percentage splits.
// Both are omitted for equal splits.
type Split struct {
	ParticipantID string   `json:"participantId"`
	Amount        *float64 `json:"amount,omitempty"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

type Expense struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	PaidBy        string    `json:"paidBy"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"categoryLabel"`
	SplitType     string    `json:"splitType"`
	Splits        []Split   `json:"splits"`
	GroupID       string    `json:"groupId"`
	Notes         string    `json:"notes,omitempty"`
}

// Balance is a recommended transfer from a debtor to a creditor.
type Balance struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type MemberBalance struct {
	ParticipantID string  `json:"participantId"`
	NetBalance    float64 `json:"netBalance"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalShare    float64 `json:"totalShare"`
}

// State is the complete client view, scoped to the active group.
type State struct {
	CurrentGroup Group           `json:"currentGroup"`
	Groups       []Group         `json:"groups"`
	Participants []Participant   `json:"participants"`
	Members      []Participant   `json:"members"`
	Expenses     []Expense       `json:"expenses"`
	NetBalances  []MemberBalance `json:"netBalances"`
	Balances     []Balance       `json:"balances"`
}

type CategoryStat struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type GetStateRequest struct{}

type GetStateResponse struct {
	State *State `json:"state"`
}

type AddParticipantRequest struct {
	Name string `json:"name"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
	State       *State       `json:"state"`
}

type AddGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members,omitempty"`
}

type AddGroupResponse struct {
	Group *Group `json:"group"`
	State *State `json:"state"`
}

type SetCurrentGroupRequest struct {
	GroupID string `json:"groupId"`
}

type SetCurrentGroupResponse struct {
	State *State `json:"state"`
}

type AddExpenseRequest struct {
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	PaidBy      string     `json:"paidBy"`
	Date        *time.Time `json:"date,omitempty"` // Defaults to now
	Category    string     `json:"category,omitempty"`
	SplitType   string     `json:"splitType,omitempty"`
	Splits      []Split    `json:"splits"`
	Notes       string     `json:"notes,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
	State   *State   `json:"state"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct {
	State *State `json:"state"`
}

type SettleUpRequest struct{}

type SettleUpResponse struct {
	Cleared        int    `json:"cleared"`
	AlreadySettled bool   `json:"alreadySettled"`
	State          *State `json:"state"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Total      float64        `json:"total"`
	Count      int            `json:"count"`
	Average    float64        `json:"average"`
	Categories []CategoryStat `json:"categories"`
}
