package opportunityapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/opportunity"
	"github.com/carevo/platform/placement/opportunity/opportunitysrv"
)

type OpportunityHandlers struct {
	service *opportunitysrv.Service
}

func NewOpportunityHandlers(service *opportunitysrv.Service) *OpportunityHandlers {
	return &OpportunityHandlers{service: service}
}

// routeFamily keeps the original per-type API surface: the three families
// share behavior but differ in path segment, envelope key and messages.
type routeFamily struct {
	opType   kernel.OpportunityType
	segment  string
	envelope string
	noun     string
}

var families = []routeFamily{
	{kernel.OpportunityTypeProject, "projects", "projects", "Project"},
	{kernel.OpportunityTypeResearch, "research", "papers", "Research paper"},
	{kernel.OpportunityTypePatent, "patents", "patents", "Patent"},
}

// singular returns the envelope key for one created item.
func (f routeFamily) singular() string {
	switch f.opType {
	case kernel.OpportunityTypeResearch:
		return "paper"
	case kernel.OpportunityTypePatent:
		return "patent"
	default:
		return "project"
	}
}

func (h *OpportunityHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	for _, f := range families {
		f := f

		admin := app.Group("/api/user/admin/"+f.segment,
			authMiddleware.Authenticate(), authMiddleware.RequireAdmin())
		admin.Get("/", h.handleAdminList(f))
		admin.Post("/", h.handleCreate(f))
		admin.Put("/:id", h.handleUpdate(f))
		admin.Delete("/:id", h.handleDelete(f))

		app.Get("/api/student/opportunities/"+f.segment,
			authMiddleware.Authenticate(), h.handleStudentList(f))
	}
}

// GET /api/user/admin/{projects|research|patents}
func (h *OpportunityHandlers) handleAdminList(f routeFamily) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listings, err := h.service.ListForAdmin(c.Context(), f.opType)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{f.envelope: listings})
	}
}

// POST /api/user/admin/{projects|research|patents}
func (h *OpportunityHandlers) handleCreate(f routeFamily) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := auth.GetAuthContext(c)
		if !ok {
			return auth.ErrNotAuthenticated()
		}

		var req opportunity.CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		listing, err := h.service.Create(c.Context(), f.opType, authCtx.UserID, req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    f.noun + " created successfully",
			f.singular(): listing,
		})
	}
}

// PUT /api/user/admin/{projects|research|patents}/:id
func (h *OpportunityHandlers) handleUpdate(f routeFamily) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req opportunity.UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		id := kernel.NewOpportunityID(c.Params("id"))
		if err := h.service.Update(c.Context(), id, f.opType, req); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": f.noun + " updated successfully"})
	}
}

// DELETE /api/user/admin/{projects|research|patents}/:id
func (h *OpportunityHandlers) handleDelete(f routeFamily) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := kernel.NewOpportunityID(c.Params("id"))
		if err := h.service.Delete(c.Context(), id, f.opType); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": f.noun + " deleted successfully"})
	}
}

// GET /api/student/opportunities/{projects|research|patents}
func (h *OpportunityHandlers) handleStudentList(f routeFamily) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := auth.GetAuthContext(c)
		if !ok {
			return auth.ErrNotAuthenticated()
		}

		listings, err := h.service.ListForStudent(c.Context(), authCtx.UserID, f.opType)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{f.envelope: listings})
	}
}
