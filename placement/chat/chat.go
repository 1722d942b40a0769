package chat

import (
	"time"

	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
)

// Conversation groups the messages between a set of participants.
type Conversation struct {
	ID            kernel.ConversationID `db:"id" json:"id"`
	Participants  pq.StringArray        `db:"participants" json:"participants"`
	LastMessageAt *time.Time            `db:"last_message_at" json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time             `db:"created_at" json:"createdAt"`
}

// HasParticipant reports whether the user belongs to the conversation.
func (c *Conversation) HasParticipant(userID kernel.UserID) bool {
	for _, p := range c.Participants {
		if p == userID.String() {
			return true
		}
	}
	return false
}

type Message struct {
	ID             kernel.MessageID      `db:"id" json:"id"`
	ConversationID kernel.ConversationID `db:"conversation_id" json:"conversationId"`
	SenderID       kernel.UserID         `db:"sender_id" json:"senderId"`
	Body           string                `db:"body" json:"body"`
	SentAt         time.Time             `db:"sent_at" json:"sentAt"`
}
