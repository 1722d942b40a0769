package chatsrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/chat"
)

type fakeConversationRepo struct {
	items map[kernel.ConversationID]*chat.Conversation
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{items: make(map[kernel.ConversationID]*chat.Conversation)}
}

func (r *fakeConversationRepo) Create(_ context.Context, c *chat.Conversation) error {
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *fakeConversationRepo) GetByID(_ context.Context, id kernel.ConversationID) (*chat.Conversation, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, chat.ErrConversationNotFound()
	}
	copied := *c
	return &copied, nil
}

func (r *fakeConversationRepo) ListByParticipant(_ context.Context, userID kernel.UserID) ([]chat.Conversation, error) {
	var out []chat.Conversation
	for _, c := range r.items {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) TouchLastMessage(_ context.Context, id kernel.ConversationID, at time.Time) error {
	c, ok := r.items[id]
	if !ok {
		return chat.ErrConversationNotFound()
	}
	c.LastMessageAt = &at
	return nil
}

type fakeMessageRepo struct {
	items []chat.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, m *chat.Message) error {
	r.items = append(r.items, *m)
	return nil
}

func (r *fakeMessageRepo) ListByConversation(_ context.Context, id kernel.ConversationID) ([]chat.Message, error) {
	var out []chat.Message
	for _, m := range r.items {
		if m.ConversationID == id {
			out = append(out, m)
		}
	}
	return out, nil
}

const (
	alice = kernel.UserID("alice")
	bob   = kernel.UserID("bob")
	eve   = kernel.UserID("eve")
)

func newTestService() (*Service, *fakeConversationRepo) {
	conversations := newFakeConversationRepo()
	return NewService(conversations, &fakeMessageRepo{}), conversations
}

func TestCreateConversation_IncludesCreator(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"bob", "bob", " ", "alice"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob", "alice"}, []string(c.Participants))
}

func TestCreateConversation_NeedsAnotherParticipant(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"alice", ""},
	})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, chat.CodeMissingParticipants, appErr.Code)
}

func TestSendMessage(t *testing.T) {
	svc, conversations := newTestService()

	c, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"bob"},
	})
	require.NoError(t, err)

	m, err := svc.SendMessage(context.Background(), bob, c.ID, chat.SendMessageRequest{Body: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Body)
	assert.Equal(t, bob, m.SenderID)

	stored, err := conversations.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastMessageAt)
	assert.Equal(t, m.SentAt, *stored.LastMessageAt)
}

func TestSendMessage_EmptyBody(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"bob"},
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), alice, c.ID, chat.SendMessageRequest{Body: "   "})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, chat.CodeEmptyMessage, appErr.Code)
}

func TestSendMessage_NonParticipantRejected(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"bob"},
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), eve, c.ID, chat.SendMessageRequest{Body: "hi"})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, chat.CodeNotParticipant, appErr.Code)
}

func TestListMessages_ParticipantsOnly(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.CreateConversation(context.Background(), alice, chat.CreateConversationRequest{
		Participants: []string{"bob"},
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), alice, c.ID, chat.SendMessageRequest{Body: "hi"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), bob, c.ID, chat.SendMessageRequest{Body: "hey"})
	require.NoError(t, err)

	messages, err := svc.ListMessages(context.Background(), alice, c.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	_, err = svc.ListMessages(context.Background(), eve, c.ID)
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, chat.CodeNotParticipant, appErr.Code)
}

func TestListConversations_EmptyIsNotNil(t *testing.T) {
	svc, _ := newTestService()

	conversations, err := svc.ListConversations(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, conversations)
	assert.Empty(t, conversations)
}
