package helpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/placement/help"
	"github.com/carevo/platform/placement/help/helpsrv"
)

type HelpHandlers struct {
	service *helpsrv.Service
}

func NewHelpHandlers(service *helpsrv.Service) *HelpHandlers {
	return &HelpHandlers{service: service}
}

func (h *HelpHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	grp := app.Group("/api/help/reports", authMiddleware.Authenticate())
	grp.Post("/", h.handleCreate)
	grp.Get("/", h.handleListOwn)

	app.Get("/api/admin/help/reports",
		authMiddleware.Authenticate(), authMiddleware.RequireAdmin(),
		h.handleListAll)
}

// POST /api/help/reports
func (h *HelpHandlers) handleCreate(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req help.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	r, err := h.service.CreateReport(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Help report submitted successfully",
		"id":      r.ID,
	})
}

// GET /api/help/reports
func (h *HelpHandlers) handleListOwn(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	reports, err := h.service.ListOwn(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reports": reports})
}

// GET /api/admin/help/reports
func (h *HelpHandlers) handleListAll(c *fiber.Ctx) error {
	reports, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reports": reports})
}
