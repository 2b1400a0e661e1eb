package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmynk/billease/internal/models"
	"github.com/mmynk/billease/internal/storage"
)

// Storage keys for the persisted records.
const (
	KeyParticipants = "billease-participants"
	KeyGroups       = "billease-groups"
	KeyExpenses     = "billease-expenses"
	KeyCurrentGroup = "billease-current-group"
)

var allKeys = []string{KeyParticipants, KeyGroups, KeyExpenses, KeyCurrentGroup}

// State is everything the ledger persists.
type State struct {
	Participants   []models.Participant
	Groups         []models.Group
	Expenses       []models.Expense // Newest first
	CurrentGroupID string
}

// EncodeState serializes each record of s under its storage key.
func EncodeState(s State) (map[string][]byte, error) {
	records := make(map[string][]byte, len(allKeys))

	values := map[string]any{
		KeyParticipants: nonNil(s.Participants),
		KeyGroups:       nonNil(s.Groups),
		KeyExpenses:     nonNil(s.Expenses),
		KeyCurrentGroup: s.CurrentGroupID,
	}
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		records[key] = data
	}
	return records, nil
}

// DecodeState parses records produced by EncodeState. Missing keys decode to
// empty collections.
func DecodeState(records map[string][]byte) (State, error) {
	var s State
	targets := map[string]any{
		KeyParticipants: &s.Participants,
		KeyGroups:       &s.Groups,
		KeyExpenses:     &s.Expenses,
		KeyCurrentGroup: &s.CurrentGroupID,
	}
	for key, target := range targets {
		data := records[key]
		if len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, target); err != nil {
			return State{}, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}
	return s, nil
}

func loadState(ctx context.Context, store storage.Store) (State, error) {
	records := make(map[string][]byte, len(allKeys))
	for _, key := range allKeys {
		data, err := store.Get(ctx, key)
		if err != nil {
			return State{}, fmt.Errorf("failed to load %s: %w", key, err)
		}
		records[key] = data
	}
	return DecodeState(records)
}

// subset keeps only the given keys of records.
func subset(records map[string][]byte, keys ...string) map[string][]byte {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		out[k] = records[k]
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
