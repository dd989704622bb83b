package postgres

import (
	"context"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// interactionRepository implements the repository.InteractionRepository interface.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository is the constructor for interactionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

// Create records a user interaction with a project.
func (repo *interactionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	interactionM := fromInteractionDomain(interaction)

	if err := repo.db.WithContext(ctx).Create(interactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProjectNotFound.WrapMessage("interaction target does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create interaction")
	}

	interaction.ID = interactionM.ID
	interaction.CreatedAt = interactionM.CreatedAt

	return nil
}

func fromInteractionDomain(interaction *entity.Interaction) *model.InteractionModel {
	return &model.InteractionModel{
		ID:        interaction.ID,
		UserID:    interaction.UserID,
		ProjectID: interaction.ProjectID,
		Type:      interaction.Type.String(),
	}
}
