// Package ledger owns the participants, groups and expenses of the application.
//
// Every mutation validates its input, persists the changed records through a
// storage.Store, and only then updates the in-memory model and recomputes the
// active group's balances. A rejected or failed mutation leaves both the model
// and the persisted records unchanged.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/billease/internal/calculator"
	"github.com/mmynk/billease/internal/metrics"
	"github.com/mmynk/billease/internal/models"
	"github.com/mmynk/billease/internal/storage"
)

// Palette is the cycle of colours assigned to new participants, by participant count.
var Palette = []string{"#8B5CF6", "#06B6D4", "#F59E0B", "#EC4899", "#10B981", "#EF4444"}

// The group created when no groups have been persisted yet.
const (
	DefaultGroupID   = "default"
	DefaultGroupName = "My Expenses"
)

// Ledger is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	store   storage.Store
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	metrics *metrics.Recorder

	state     State
	net       []calculator.MemberBalance
	transfers []models.Balance
}

// GroupInput describes a new group.
type GroupInput struct {
	Name        string
	Description string
	Members     []string // Optional initial members; each must be a known participant
}

// ExpenseInput describes a new expense in the active group.
type ExpenseInput struct {
	Description string
	Amount      float64
	PaidBy      string
	Date        time.Time // Zero means now
	Category    models.Category
	SplitType   models.SplitType // Empty means equal
	Splits      []models.Split
	Notes       string
}

// New loads the persisted state from store.
//
// If no groups exist, a default group containing every known participant is
// created and made active, and expenses without a group are attributed to it.
// If the persisted active group is unknown, the first group becomes active.
func New(ctx context.Context, store storage.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		newID:  defaultID,
	}
	for _, opt := range opts {
		opt(l)
	}

	state, err := loadState(ctx, store)
	if err != nil {
		return nil, err
	}

	var changed []string
	if len(state.Groups) == 0 {
		members := make([]string, len(state.Participants))
		for i, p := range state.Participants {
			members[i] = p.ID
		}
		state.Groups = []models.Group{{
			ID:        DefaultGroupID,
			Name:      DefaultGroupName,
			Members:   members,
			CreatedAt: l.now(),
		}}
		changed = append(changed, KeyGroups)

		for i := range state.Expenses {
			if state.Expenses[i].GroupID == "" {
				state.Expenses[i].GroupID = DefaultGroupID
				if !slices.Contains(changed, KeyExpenses) {
					changed = append(changed, KeyExpenses)
				}
			}
		}
	}
	if indexOfGroup(state.Groups, state.CurrentGroupID) < 0 {
		state.CurrentGroupID = state.Groups[0].ID
		changed = append(changed, KeyCurrentGroup)
	}

	if len(changed) > 0 {
		records, err := EncodeState(state)
		if err != nil {
			return nil, err
		}
		if err := store.PutAll(ctx, subset(records, changed...)); err != nil {
			return nil, fmt.Errorf("failed to initialize ledger: %w", err)
		}
	}

	l.state = state
	l.recompute()

	l.logger.Info("Ledger loaded",
		"participants", len(state.Participants),
		"groups", len(state.Groups),
		"expenses", len(state.Expenses),
		"group_id", state.CurrentGroupID,
	)
	return l, nil
}

// AddParticipant creates a participant and adds them to the active group.
func (l *Ledger) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	const op = "add_participant"

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, l.reject(op, invalid(ErrEmptyName))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p := models.Participant{
		ID:    l.newID(),
		Name:  name,
		Color: Palette[len(l.state.Participants)%len(Palette)],
	}

	next := l.state
	next.Participants = append(slices.Clone(l.state.Participants), p)
	next.Groups = slices.Clone(l.state.Groups)
	group := &next.Groups[l.currentIndex()]
	group.Members = append(slices.Clone(group.Members), p.ID)

	if err := l.commit(ctx, op, next, KeyParticipants, KeyGroups); err != nil {
		return models.Participant{}, err
	}

	l.logger.Info("Participant added", "participant_id", p.ID, "group_id", group.ID)
	return p, nil
}

// AddGroup creates a group and makes it the active group.
func (l *Ledger) AddGroup(ctx context.Context, in GroupInput) (models.Group, error) {
	const op = "add_group"

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Group{}, l.reject(op, invalid(ErrEmptyName))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	members := make([]string, 0, len(in.Members))
	for _, id := range in.Members {
		if indexOfParticipant(l.state.Participants, id) < 0 {
			return models.Group{}, l.reject(op, invalid(fmt.Errorf("%w: %s", ErrUnknownParticipant, id)))
		}
		if slices.Contains(members, id) {
			return models.Group{}, l.reject(op, invalid(fmt.Errorf("%w: %s", ErrDuplicateMember, id)))
		}
		members = append(members, id)
	}

	group := models.Group{
		ID:          l.newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Members:     members,
		CreatedAt:   l.now(),
	}

	next := l.state
	next.Groups = append(slices.Clone(l.state.Groups), group)
	next.CurrentGroupID = group.ID

	if err := l.commit(ctx, op, next, KeyGroups, KeyCurrentGroup); err != nil {
		return models.Group{}, err
	}

	l.logger.Info("Group created", "group_id", group.ID, "members", len(members))
	return cloneGroup(group), nil
}

// SetCurrentGroup switches the active group. An unknown id is ignored.
func (l *Ledger) SetCurrentGroup(ctx context.Context, id string) error {
	const op = "set_current_group"

	l.mu.Lock()
	defer l.mu.Unlock()

	if indexOfGroup(l.state.Groups, id) < 0 {
		l.logger.Debug("Ignoring switch to unknown group", "group_id", id)
		return nil
	}
	if id == l.state.CurrentGroupID {
		return nil
	}

	next := l.state
	next.CurrentGroupID = id
	if err := l.commit(ctx, op, next, KeyCurrentGroup); err != nil {
		return err
	}

	l.logger.Info("Active group changed", "group_id", id)
	return nil
}

// AddExpense records an expense in the active group. The payer and every split
// participant must be members of the active group.
func (l *Ledger) AddExpense(ctx context.Context, in ExpenseInput) (models.Expense, error) {
	const op = "add_expense"

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return models.Expense{}, l.reject(op, invalid(ErrEmptyDescription))
	}
	category, err := models.ParseCategory(string(in.Category))
	if err != nil {
		return models.Expense{}, l.reject(op, invalid(err))
	}
	splitType := in.SplitType
	if splitType == "" {
		splitType = models.SplitEqual
	}
	if err := calculator.ValidateSplits(in.Amount, splitType, in.Splits); err != nil {
		return models.Expense{}, l.reject(op, invalid(err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	group := l.state.Groups[l.currentIndex()]
	if !group.HasMember(in.PaidBy) {
		return models.Expense{}, l.reject(op, invalid(fmt.Errorf("%w: payer %q", ErrNotGroupMember, in.PaidBy)), "group_id", group.ID)
	}
	for _, s := range in.Splits {
		if !group.HasMember(s.ParticipantID) {
			return models.Expense{}, l.reject(op, invalid(fmt.Errorf("%w: %q", ErrNotGroupMember, s.ParticipantID)), "group_id", group.ID)
		}
	}

	date := in.Date
	if date.IsZero() {
		date = l.now()
	}

	expense := models.Expense{
		ID:          l.newID(),
		Description: description,
		Amount:      in.Amount,
		PaidBy:      in.PaidBy,
		Date:        date,
		Category:    category,
		SplitType:   splitType,
		Splits:      normalizeSplits(splitType, in.Splits),
		GroupID:     group.ID,
		Notes:       strings.TrimSpace(in.Notes),
	}

	next := l.state
	next.Expenses = append([]models.Expense{expense}, l.state.Expenses...)
	if err := l.commit(ctx, op, next, KeyExpenses); err != nil {
		return models.Expense{}, err
	}

	l.logger.Info("Expense added",
		"expense_id", expense.ID,
		"group_id", group.ID,
		"amount", expense.Amount,
		"split_type", expense.SplitType,
	)
	return cloneExpense(expense), nil
}

// DeleteExpense removes an expense by id.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	const op = "delete_expense"

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.state.Expenses, func(e models.Expense) bool { return e.ID == id })
	if idx < 0 {
		return l.reject(op, fmt.Errorf("%w: %s", ErrExpenseNotFound, id))
	}

	next := l.state
	next.Expenses = slices.Delete(slices.Clone(l.state.Expenses), idx, idx+1)
	if err := l.commit(ctx, op, next, KeyExpenses); err != nil {
		return err
	}

	l.logger.Info("Expense deleted", "expense_id", id)
	return nil
}

// SettleUp deletes every expense of the active group and returns how many were
// removed. Other groups are untouched. Settling an empty group does nothing.
func (l *Ledger) SettleUp(ctx context.Context) (int, error) {
	const op = "settle_up"

	l.mu.Lock()
	defer l.mu.Unlock()

	groupID := l.state.CurrentGroupID
	kept := make([]models.Expense, 0, len(l.state.Expenses))
	for _, e := range l.state.Expenses {
		if e.GroupID != groupID {
			kept = append(kept, e)
		}
	}
	cleared := len(l.state.Expenses) - len(kept)
	if cleared == 0 {
		l.logger.Debug("Group already settled", "group_id", groupID)
		return 0, nil
	}

	next := l.state
	next.Expenses = kept
	if err := l.commit(ctx, op, next, KeyExpenses); err != nil {
		return 0, err
	}

	l.logger.Info("Group settled up", "group_id", groupID, "cleared", cleared)
	return cleared, nil
}

// commit persists the given keys of next, then makes next the current state.
// Callers must hold l.mu.
func (l *Ledger) commit(ctx context.Context, op string, next State, keys ...string) error {
	records, err := EncodeState(next)
	if err == nil {
		err = l.store.PutAll(ctx, subset(records, keys...))
	}
	if err != nil {
		l.metrics.LedgerMutation(op, metrics.ResultError)
		l.logger.Error("Failed to persist ledger", "op", op, "error", err)
		return fmt.Errorf("failed to persist %s: %w", op, err)
	}

	l.state = next
	l.recompute()
	l.metrics.LedgerMutation(op, metrics.ResultOK)
	return nil
}

func (l *Ledger) reject(op string, err error, attrs ...any) error {
	l.metrics.LedgerMutation(op, metrics.ResultRejected)
	l.logger.Warn("Ledger mutation rejected", append([]any{"op", op, "error", err}, attrs...)...)
	return err
}

// recompute rederives the active group's balances. Callers must hold l.mu.
func (l *Ledger) recompute() {
	group := l.state.Groups[l.currentIndex()]
	l.net, l.transfers = calculator.CalculateGroupBalances(group.Members, l.groupExpenses(group.ID))
	l.metrics.BalancesRecomputed(len(l.transfers))
}

func (l *Ledger) currentIndex() int {
	return indexOfGroup(l.state.Groups, l.state.CurrentGroupID)
}

func (l *Ledger) groupExpenses(groupID string) []models.Expense {
	var out []models.Expense
	for _, e := range l.state.Expenses {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

func indexOfGroup(groups []models.Group, id string) int {
	return slices.IndexFunc(groups, func(g models.Group) bool { return g.ID == id })
}

func indexOfParticipant(participants []models.Participant, id string) int {
	return slices.IndexFunc(participants, func(p models.Participant) bool { return p.ID == id })
}

// normalizeSplits copies splits, keeping only the field the split type uses.
func normalizeSplits(splitType models.SplitType, splits []models.Split) []models.Split {
	out := make([]models.Split, len(splits))
	for i, s := range splits {
		out[i] = models.Split{ParticipantID: s.ParticipantID}
		switch splitType {
		case models.SplitExact:
			out[i].Amount = copyFloat(s.Amount)
		case models.SplitPercentage:
			out[i].Percentage = copyFloat(s.Percentage)
		}
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
