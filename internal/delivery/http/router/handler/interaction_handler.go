package handler

import (
	"log/slog"
	"net/http"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/delivery/http/response"
	"wchub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InteractionHandler holds dependencies for interaction logging handlers.
type InteractionHandler struct {
	uc     usecase.InteractionUsecase
	logger *slog.Logger
}

// NewInteractionHandler is the constructor for InteractionHandler, injected by Fx.
func NewInteractionHandler(uc usecase.InteractionUsecase, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Record logs a view or like event for a project.
func (h *InteractionHandler) Record(c echo.Context) error {
	var input *usecase.RecordInteractionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interaction input")
	}

	interaction, err := h.uc.RecordInteraction(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, interaction, "Interaction recorded")
}
