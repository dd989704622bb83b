package usecase

import (
	"context"

	"wchub/internal/domain/entity"
)

// SendMessageInput defines the data required to send a direct message.
type SendMessageInput struct {
	ReceiverID int64  `json:"receiverId"`
	Text       string `json:"text"`
}

// MessageUsecase defines the interface for direct messaging operations.
type MessageUsecase interface {
	// SendMessage resolves the conversation between sender and receiver,
	// creating it on first contact, and appends the message to it.
	SendMessage(ctx context.Context, senderID int64, input *SendMessageInput) (*entity.Message, error)

	// Inbox returns the messages addressed to the user, newest first.
	Inbox(ctx context.Context, userID int64) ([]*entity.Message, error)
}
