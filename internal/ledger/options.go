package ledger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/billease/internal/metrics"
)

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithClock sets the time source used for creation timestamps and default expense dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator sets the ID source for new participants, groups and expenses.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// WithMetrics records mutations and recomputations on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(l *Ledger) { l.metrics = r }
}

func defaultID() string {
	return uuid.New().String()
}
