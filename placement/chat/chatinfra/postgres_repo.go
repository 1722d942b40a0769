package chatinfra

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/chat"
)

type PostgresConversationRepository struct {
	db *sqlx.DB
}

func NewPostgresConversationRepository(db *sqlx.DB) chat.ConversationRepository {
	return &PostgresConversationRepository{db: db}
}

// Create creates a new conversation
func (r *PostgresConversationRepository) Create(ctx context.Context, c *chat.Conversation) error {
	query := `
		INSERT INTO conversations (id, participants, last_message_at, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Participants, c.LastMessageAt, c.CreatedAt)
	return err
}

// GetByID retrieves a conversation by ID
func (r *PostgresConversationRepository) GetByID(ctx context.Context, id kernel.ConversationID) (*chat.Conversation, error) {
	query := `
		SELECT id, participants, last_message_at, created_at
		FROM conversations
		WHERE id = $1
	`

	var c chat.Conversation
	var lastMessageAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Participants,
		&lastMessageAt,
		&c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, chat.ErrConversationNotFound()
	}
	if err != nil {
		return nil, err
	}
	if lastMessageAt.Valid {
		t := lastMessageAt.Time
		c.LastMessageAt = &t
	}
	return &c, nil
}

// ListByParticipant retrieves the user's conversations, most recently active
// first
func (r *PostgresConversationRepository) ListByParticipant(ctx context.Context, userID kernel.UserID) ([]chat.Conversation, error) {
	query := `
		SELECT id, participants, last_message_at, created_at
		FROM conversations
		WHERE $1 = ANY(participants)
		ORDER BY last_message_at DESC NULLS LAST, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []chat.Conversation
	for rows.Next() {
		var c chat.Conversation
		var lastMessageAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.Participants, &lastMessageAt, &c.CreatedAt); err != nil {
			return nil, err
		}
		if lastMessageAt.Valid {
			t := lastMessageAt.Time
			c.LastMessageAt = &t
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// TouchLastMessage updates the conversation's last activity timestamp
func (r *PostgresConversationRepository) TouchLastMessage(ctx context.Context, id kernel.ConversationID, at time.Time) error {
	query := `UPDATE conversations SET last_message_at = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return chat.ErrConversationNotFound()
	}
	return nil
}

type PostgresMessageRepository struct {
	db *sqlx.DB
}

func NewPostgresMessageRepository(db *sqlx.DB) chat.MessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create appends a message to a conversation
func (r *PostgresMessageRepository) Create(ctx context.Context, m *chat.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, m.ID, m.ConversationID, m.SenderID, m.Body, m.SentAt)
	return err
}

// ListByConversation retrieves a conversation's messages, oldest first
func (r *PostgresMessageRepository) ListByConversation(ctx context.Context, conversationID kernel.ConversationID) ([]chat.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, body, sent_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY sent_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
