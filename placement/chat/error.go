package chat

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CHAT")

// Error codes
var (
	CodeConversationNotFound = ErrRegistry.Register("CONVERSATION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Conversation not found")
	CodeNotParticipant       = ErrRegistry.Register("NOT_PARTICIPANT", errx.TypeAuthorization, http.StatusForbidden, "Not a participant of this conversation")
	CodeMissingParticipants  = ErrRegistry.Register("MISSING_PARTICIPANTS", errx.TypeValidation, http.StatusBadRequest, "A conversation needs at least two participants")
	CodeEmptyMessage         = ErrRegistry.Register("EMPTY_MESSAGE", errx.TypeValidation, http.StatusBadRequest, "Message body is required")
)

// Helper functions
func ErrConversationNotFound() *errx.Error {
	return ErrRegistry.New(CodeConversationNotFound)
}

func ErrNotParticipant() *errx.Error {
	return ErrRegistry.New(CodeNotParticipant)
}

func ErrMissingParticipants() *errx.Error {
	return ErrRegistry.New(CodeMissingParticipants)
}

func ErrEmptyMessage() *errx.Error {
	return ErrRegistry.New(CodeEmptyMessage)
}
