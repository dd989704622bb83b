package usecase

import (
	"context"

	"wchub/internal/domain/entity"
)

// RecordInteractionInput defines the data required to log a project interaction.
type RecordInteractionInput struct {
	ProjectID int64  `json:"projectId"`
	Type      string `json:"type"`
}

// InteractionUsecase defines the interface for interaction logging.
type InteractionUsecase interface {
	RecordInteraction(ctx context.Context, userID int64, input *RecordInteractionInput) (*entity.Interaction, error)
}
