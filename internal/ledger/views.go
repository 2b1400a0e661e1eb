package ledger

import (
	"io"
	"slices"

	"github.com/mmynk/billease/internal/calculator"
	"github.com/mmynk/billease/internal/export"
	"github.com/mmynk/billease/internal/models"
)

// Snapshot is a consistent view of the ledger scoped to the active group.
type Snapshot struct {
	CurrentGroup models.Group
	Groups       []models.Group
	Participants []models.Participant
	Members      []models.Participant
	Expenses     []models.Expense
	NetBalances  []calculator.MemberBalance
	Balances     []models.Balance
}

// Snapshot returns every view under a single lock.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return Snapshot{
		CurrentGroup: l.currentGroup(),
		Groups:       l.groups(),
		Participants: slices.Clone(l.state.Participants),
		Members:      l.members(),
		Expenses:     l.expenses(),
		NetBalances:  slices.Clone(l.net),
		Balances:     slices.Clone(l.transfers),
	}
}

// CurrentGroup returns the active group.
func (l *Ledger) CurrentGroup() models.Group {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentGroup()
}

// Groups returns every group in creation order.
func (l *Ledger) Groups() []models.Group {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.groups()
}

// Participants returns every participant in creation order.
func (l *Ledger) Participants() []models.Participant {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.state.Participants)
}

// Participant looks up a participant by id.
func (l *Ledger) Participant(id string) (models.Participant, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := indexOfParticipant(l.state.Participants, id)
	if idx < 0 {
		return models.Participant{}, false
	}
	return l.state.Participants[idx], true
}

// Members returns the active group's participants in member order.
func (l *Ledger) Members() []models.Participant {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.members()
}

// Expenses returns the active group's expenses, newest first.
func (l *Ledger) Expenses() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.expenses()
}

// Balances returns the transfers that settle the active group.
func (l *Ledger) Balances() []models.Balance {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.transfers)
}

// NetBalances returns each active group member's net position.
func (l *Ledger) NetBalances() []calculator.MemberBalance {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.net)
}

// Summary aggregates the active group's spending by category.
func (l *Ledger) Summary() calculator.Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return calculator.Summarize(l.groupExpenses(l.state.CurrentGroupID))
}

// ExportCSV writes the active group's expenses as CSV.
func (l *Ledger) ExportCSV(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return export.WriteCSV(w, l.groupExpenses(l.state.CurrentGroupID), l.state.Participants)
}

// ExportFilename names the CSV download for the active group.
func (l *Ledger) ExportFilename() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return export.Filename(l.currentGroup().Name, l.now())
}

func (l *Ledger) currentGroup() models.Group {
	return cloneGroup(l.state.Groups[l.currentIndex()])
}

func (l *Ledger) groups() []models.Group {
	out := make([]models.Group, len(l.state.Groups))
	for i, g := range l.state.Groups {
		out[i] = cloneGroup(g)
	}
	return out
}

func (l *Ledger) members() []models.Participant {
	group := l.state.Groups[l.currentIndex()]
	out := make([]models.Participant, 0, len(group.Members))
	for _, id := range group.Members {
		if idx := indexOfParticipant(l.state.Participants, id); idx >= 0 {
			out = append(out, l.state.Participants[idx])
		}
	}
	return out
}

func (l *Ledger) expenses() []models.Expense {
	active := l.groupExpenses(l.state.CurrentGroupID)
	out := make([]models.Expense, len(active))
	for i, e := range active {
		out[i] = cloneExpense(e)
	}
	return out
}

func cloneGroup(g models.Group) models.Group {
	g.Members = slices.Clone(g.Members)
	return g
}

func cloneExpense(e models.Expense) models.Expense {
	e.Splits = normalizeSplits(e.SplitType, e.Splits)
	return e
}
