// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"
)

// Conversation groups the messages exchanged between a pair of users.
// The Participants key is canonical: both message directions between the
// same two users resolve to the same row.
type Conversation struct {
	ID           int64     `json:"id"`
	Participants string    `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Message is a directed, append-only text message between two users.
// Messages carry a creation timestamp only; there is no edit path.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	ReceiverID     int64     `json:"receiverId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConversationKey derives the canonical participants key for a pair of
// user IDs. The result is order-independent: (a,b) and (b,a) always yield
// the same key, which the conversations table enforces as unique.
func ConversationKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}

	return strconv.FormatInt(a, 10) + "_" + strconv.FormatInt(b, 10)
}
