package chatapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/chat"
	"github.com/carevo/platform/placement/chat/chatsrv"
)

type ChatHandlers struct {
	service *chatsrv.Service
}

func NewChatHandlers(service *chatsrv.Service) *ChatHandlers {
	return &ChatHandlers{service: service}
}

func (h *ChatHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	grp := app.Group("/api/chat", authMiddleware.Authenticate())
	grp.Post("/conversations", h.handleCreateConversation)
	grp.Get("/conversations", h.handleListConversations)
	grp.Post("/conversations/:id/messages", h.handleSendMessage)
	grp.Get("/conversations/:id/messages", h.handleListMessages)
}

// POST /api/chat/conversations
func (h *ChatHandlers) handleCreateConversation(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req chat.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	conversation, err := h.service.CreateConversation(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"conversation": conversation})
}

// GET /api/chat/conversations
func (h *ChatHandlers) handleListConversations(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	conversations, err := h.service.ListConversations(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}

// POST /api/chat/conversations/:id/messages
func (h *ChatHandlers) handleSendMessage(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req chat.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id := kernel.NewConversationID(c.Params("id"))
	message, err := h.service.SendMessage(c.Context(), authCtx.UserID, id, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

// GET /api/chat/conversations/:id/messages
func (h *ChatHandlers) handleListMessages(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	id := kernel.NewConversationID(c.Params("id"))
	messages, err := h.service.ListMessages(c.Context(), authCtx.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"messages": messages})
}
