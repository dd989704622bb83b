package impl

import (
	"context"
	"log/slog"

	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/usecase"

	"go.uber.org/fx"
)

// interactionService implements the InteractionUsecase interface.
type interactionService struct {
	interactionRepo repository.InteractionRepository
	logger          *slog.Logger
}

// InteractionServiceParams holds dependencies for interactionService, injected by Fx.
type InteractionServiceParams struct {
	fx.In

	InteractionRepo repository.InteractionRepository
	Logger          *slog.Logger
}

// NewInteractionService is the constructor for interactionService.
func NewInteractionService(params InteractionServiceParams) usecase.InteractionUsecase {
	return &interactionService{
		interactionRepo: params.InteractionRepo,
		logger:          params.Logger,
	}
}

func (srv *interactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordInteraction appends a view or like event for a project.
func (srv *interactionService) RecordInteraction(ctx context.Context, userID int64, input *usecase.RecordInteractionInput) (*entity.Interaction, error) {
	if input == nil || input.ProjectID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("projectId is required")
	}

	interactionType := entity.InteractionType(input.Type)
	if !interactionType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("type must be view or like")
	}

	interaction := &entity.Interaction{
		UserID:    userID,
		ProjectID: input.ProjectID,
		Type:      interactionType,
	}

	if err := srv.interactionRepo.Create(ctx, interaction); err != nil {
		srv.log(ctx).Error("Failed to record interaction",
			slog.Int64("userID", userID), slog.Int64("projectID", input.ProjectID), slog.Any("error", err))

		return nil, err
	}

	return interaction, nil
}
