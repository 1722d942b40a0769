package chat

import (
	"context"
	"time"

	"github.com/carevo/platform/pkg/kernel"
)

type ConversationRepository interface {
	// Create creates a new conversation
	Create(ctx context.Context, c *Conversation) error

	// GetByID retrieves a conversation by ID
	GetByID(ctx context.Context, id kernel.ConversationID) (*Conversation, error)

	// ListByParticipant retrieves the user's conversations, most recently
	// active first
	ListByParticipant(ctx context.Context, userID kernel.UserID) ([]Conversation, error)

	// TouchLastMessage updates the conversation's last activity timestamp
	TouchLastMessage(ctx context.Context, id kernel.ConversationID, at time.Time) error
}

type MessageRepository interface {
	// Create appends a message to a conversation
	Create(ctx context.Context, m *Message) error

	// ListByConversation retrieves a conversation's messages, oldest first
	ListByConversation(ctx context.Context, conversationID kernel.ConversationID) ([]Message, error)
}
