package atsapi

import (
	"io"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/placement/ats"
	"github.com/carevo/platform/placement/ats/atssrv"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type ATSHandlers struct {
	service *atssrv.Service
}

func NewATSHandlers(service *atssrv.Service) *ATSHandlers {
	return &ATSHandlers{service: service}
}

func (h *ATSHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	group := app.Group("/api/ats", authMiddleware.Authenticate())

	group.Post("/upload", h.UploadResume)
	group.Post("/from_saved_resume", h.AnalyzeSavedResume)
}

// UploadResume analyzes an uploaded resume file
// POST /api/ats/upload
func (h *ATSHandlers) UploadResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}
	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}
	if file.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large. Maximum size is 10MB",
		})
	}

	src, err := file.Open()
	if err != nil {
		return ats.ErrRegistry.NewWithCause(ats.CodeExtractionFailed, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return ats.ErrRegistry.NewWithCause(ats.CodeExtractionFailed, err)
	}

	result, err := h.service.AnalyzeUpload(c.Context(), authCtx.UserID, ats.UploadRequest{
		Filename: file.Filename,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// AnalyzeSavedResume analyzes the resume link stored on the student profile
// POST /api/ats/from_saved_resume
func (h *ATSHandlers) AnalyzeSavedResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	result, err := h.service.AnalyzeSavedResume(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
