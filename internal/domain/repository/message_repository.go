package repository

import (
	"context"

	"wchub/internal/domain/entity"
)

// ConversationRepository defines persistence for conversation rows.
type ConversationRepository interface {
	// FindOrCreate resolves the conversation for a canonical participants
	// key, creating the row when absent. Implementations must be safe
	// under concurrent first messages for the same pair: both callers
	// converge on a single row.
	FindOrCreate(ctx context.Context, participants string) (*entity.Conversation, error)
}

// MessageRepository defines persistence for the append-only message log.
type MessageRepository interface {
	// Create persists a new message row.
	Create(ctx context.Context, message *entity.Message) error

	// FindInbox retrieves all messages addressed to the given user,
	// newest first.
	FindInbox(ctx context.Context, receiverID int64) ([]*entity.Message, error)
}
