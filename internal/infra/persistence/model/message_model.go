package model

import "time"

// ConversationModel mirrors the 'conversations' table. The participants
// key is unique so concurrent find-or-create for the same pair of users
// converges on a single row.
type ConversationModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Participants string `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel mirrors the 'messages' table. Rows are append-only and
// carry a creation timestamp only; there is no updated_at column.
type MessageModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ConversationID int64  `gorm:"not null;index"`
	SenderID       int64  `gorm:"not null;index"`
	ReceiverID     int64  `gorm:"not null;index"`
	Text           string `gorm:"type:text"`
	CreatedAt      time.Time

	Conversation *ConversationModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
