package chatsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/chat"
)

type Service struct {
	conversations chat.ConversationRepository
	messages      chat.MessageRepository
}

func NewService(conversations chat.ConversationRepository, messages chat.MessageRepository) *Service {
	return &Service{conversations: conversations, messages: messages}
}

// CreateConversation starts a conversation between the caller and the other
// participants. The caller is always included.
func (s *Service) CreateConversation(ctx context.Context, creator kernel.UserID, req chat.CreateConversationRequest) (*chat.Conversation, error) {
	participants := dedupe(append(req.Participants, creator.String()))
	if len(participants) < 2 {
		return nil, chat.ErrMissingParticipants()
	}

	c := &chat.Conversation{
		ID:           kernel.NewConversationID(uuid.New().String()),
		Participants: pq.StringArray(participants),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.conversations.Create(ctx, c); err != nil {
		return nil, err
	}

	logx.Infof("Conversation created: %s (%d participants)", c.ID, len(participants))
	return c, nil
}

// ListConversations returns the user's conversations, most recently active
// first.
func (s *Service) ListConversations(ctx context.Context, userID kernel.UserID) ([]chat.Conversation, error) {
	conversations, err := s.conversations.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conversations == nil {
		conversations = []chat.Conversation{}
	}
	return conversations, nil
}

// SendMessage appends a message, stamping the conversation's last activity.
func (s *Service) SendMessage(ctx context.Context, sender kernel.UserID, conversationID kernel.ConversationID, req chat.SendMessageRequest) (*chat.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, chat.ErrEmptyMessage()
	}

	c, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(sender) {
		return nil, chat.ErrNotParticipant()
	}

	m := &chat.Message{
		ID:             kernel.NewMessageID(uuid.New().String()),
		ConversationID: conversationID,
		SenderID:       sender,
		Body:           body,
		SentAt:         time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	if err := s.conversations.TouchLastMessage(ctx, conversationID, m.SentAt); err != nil {
		logx.Warnf("Failed to touch conversation %s: %v", conversationID, err)
	}
	return m, nil
}

// ListMessages returns a conversation's messages, oldest first. Only
// participants may read them.
func (s *Service) ListMessages(ctx context.Context, reader kernel.UserID, conversationID kernel.ConversationID) ([]chat.Message, error) {
	c, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(reader) {
		return nil, chat.ErrNotParticipant()
	}

	messages, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	return messages, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
