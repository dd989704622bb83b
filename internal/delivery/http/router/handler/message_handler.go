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

// MessageHandler holds dependencies for direct messaging handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Send handles the message send request. The sender is always the
// authenticated caller, never a field of the payload.
func (h *MessageHandler) Send(c echo.Context) error {
	var input *usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// Inbox returns the messages addressed to the authenticated caller.
func (h *MessageHandler) Inbox(c echo.Context) error {
	messages, err := h.uc.Inbox(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}
