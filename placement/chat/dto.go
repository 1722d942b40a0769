package chat

type CreateConversationRequest struct {
	Participants []string `json:"participants"`
}

type SendMessageRequest struct {
	Body string `json:"body"`
}
