package repository

import (
	"context"

	"wchub/internal/domain/entity"
)

// InteractionRepository defines persistence for the append-only
// interaction event log. Events have no lifecycle beyond creation.
type InteractionRepository interface {
	// Create persists a new interaction event.
	Create(ctx context.Context, interaction *entity.Interaction) error
}
