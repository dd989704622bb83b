// Package entity contains the core business objects of the project.
package entity

import "time"

// InteractionType tags an interaction event.
type InteractionType string

const (
	// InteractionTypeView records that a user viewed a project.
	InteractionTypeView InteractionType = "view"
	// InteractionTypeLike records that a user liked a project.
	InteractionTypeLike InteractionType = "like"
)

// String returns the string representation of the InteractionType.
func (t InteractionType) String() string {
	return string(t)
}

// IsValid checks if the InteractionType is a valid value.
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeView, InteractionTypeLike:
		return true
	default:
		return false
	}
}

// Interaction is an append-only event linking a user to a project.
// It has no lifecycle beyond creation.
type Interaction struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	ProjectID int64           `json:"projectId"`
	Type      InteractionType `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
}
