package models

import "time"

// Participant is a person who can pay for or share expenses.
// Identity is the ID; names are not required to be unique.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// Name is the display name (e.g., "Alice").
	Name string `json:"name"`

	// Color is the display token assigned from the palette on creation.
	Color string `json:"color"`
}

// Group represents a named set of participants whose expenses are settled together.
// An expense belongs to exactly one group.
type Group struct {
	// ID is the unique identifier for the group (UUID format, or "default").
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Roommates", "Vacation 2025").
	Name string `json:"name"`

	// Description is an optional free-text note.
	Description string `json:"description,omitempty"`

	// Members is the list of participant IDs in this group.
	// A participant must be a member before an expense can reference them.
	Members []string `json:"members"`

	// CreatedAt is when the group was created.
	CreatedAt time.Time `json:"createdAt"`
}

// HasMember reports whether the participant ID is in the group's member list.
func (g *Group) HasMember(participantID string) bool {
	for _, m := range g.Members {
		if m == participantID {
			return true
		}
	}
	return false
}
