package aisearchapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/internal/ai/studentsearch"
	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/aisearch"
	"github.com/carevo/platform/placement/aisearch/aisearchsrv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AISearchHandlers struct {
	service *aisearchsrv.Service
}

func NewAISearchHandlers(service *aisearchsrv.Service) *AISearchHandlers {
	return &AISearchHandlers{service: service}
}

func (h *AISearchHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	grp := app.Group("/api/ai/admin",
		authMiddleware.Authenticate(), authMiddleware.RequireAdmin())
	grp.Post("/chat", h.handleChat)
	grp.Post("/export-filtered-students", h.handleExport)
}

// POST /api/ai/admin/chat
//
// Model failures are reported in-band with a 200 so the chat UI can render
// them as a reply instead of a transport error.
func (h *AISearchHandlers) handleChat(c *fiber.Ctx) error {
	var req aisearch.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	resp, err := h.service.Chat(c.Context(), message)
	if err != nil {
		logx.Errorf("AI student search failed: %v", err)
		return c.JSON(fiber.Map{
			"response":   "Error: " + err.Error(),
			"students":   []studentsearch.StudentProfile{},
			"error_type": errorType(err),
		})
	}
	return c.JSON(resp)
}

// POST /api/ai/admin/export-filtered-students
func (h *AISearchHandlers) handleExport(c *fiber.Ctx) error {
	var req aisearch.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if len(req.Students) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No students to export",
		})
	}

	data, filename, err := h.service.ExportXLSX(req.Students)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func errorType(err error) string {
	var appErr *errx.Error
	if errors.As(err, &appErr) {
		return string(appErr.Code)
	}
	return "Error"
}
