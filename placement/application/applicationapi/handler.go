package applicationapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/application"
	"github.com/carevo/platform/placement/application/applicationsrv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationHandlers struct {
	service *applicationsrv.Service
}

func NewApplicationHandlers(service *applicationsrv.Service) *ApplicationHandlers {
	return &ApplicationHandlers{service: service}
}

func (h *ApplicationHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	student := app.Group("/api/student/applications", authMiddleware.Authenticate())
	student.Post("/", h.handleSubmit)
	student.Get("/", h.handleListOwn)
	student.Put("/:id", h.handleUpdate)
	student.Delete("/:id", h.handleWithdraw)

	admin := app.Group("/api/admin", authMiddleware.Authenticate(), authMiddleware.RequireAdmin())
	admin.Get("/applications", h.handleAdminList)
	admin.Get("/applications/export", h.handleExport)
	admin.Put("/applications/:id/status", h.handleStatusUpdate)
	admin.Get("/opportunities/:id/applications", h.handleOpportunityApplications)
}

func requireStudent(c *fiber.Ctx) (auth.AuthContext, error) {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.AuthContext{}, auth.ErrNotAuthenticated()
	}
	if authCtx.UserType != kernel.UserTypeStudent {
		return auth.AuthContext{}, application.ErrStudentsOnly()
	}
	return authCtx, nil
}

// POST /api/student/applications
func (h *ApplicationHandlers) handleSubmit(c *fiber.Ctx) error {
	authCtx, err := requireStudent(c)
	if err != nil {
		return err
	}

	var req application.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	a, err := h.service.Submit(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully",
		"application": a,
	})
}

// GET /api/student/applications
func (h *ApplicationHandlers) handleListOwn(c *fiber.Ctx) error {
	authCtx, err := requireStudent(c)
	if err != nil {
		return err
	}

	applications, err := h.service.ListByStudent(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	if applications == nil {
		applications = []application.Application{}
	}
	return c.JSON(fiber.Map{"applications": applications})
}

// PUT /api/student/applications/:id
func (h *ApplicationHandlers) handleUpdate(c *fiber.Ctx) error {
	authCtx, err := requireStudent(c)
	if err != nil {
		return err
	}

	var req application.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id := kernel.NewApplicationID(c.Params("id"))
	if err := h.service.Update(c.Context(), authCtx.UserID, id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application updated successfully"})
}

// DELETE /api/student/applications/:id
func (h *ApplicationHandlers) handleWithdraw(c *fiber.Ctx) error {
	authCtx, err := requireStudent(c)
	if err != nil {
		return err
	}

	id := kernel.NewApplicationID(c.Params("id"))
	if err := h.service.Withdraw(c.Context(), authCtx.UserID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application withdrawn successfully"})
}

// GET /api/admin/applications
func (h *ApplicationHandlers) handleAdminList(c *fiber.Ctx) error {
	filter := application.ListFilter{
		OpportunityType: c.Query("opportunityType"),
		Status:          c.Query("status"),
		OpportunityID:   c.Query("opportunityId"),
	}

	resp, err := h.service.ListAll(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PUT /api/admin/applications/:id/status
func (h *ApplicationHandlers) handleStatusUpdate(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req application.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id := kernel.NewApplicationID(c.Params("id"))
	status, err := h.service.UpdateStatus(c.Context(), authCtx.UserID, id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Application %s successfully", status)})
}

// GET /api/admin/opportunities/:id/applications?type=project
func (h *ApplicationHandlers) handleOpportunityApplications(c *fiber.Ctx) error {
	opType := kernel.OpportunityType(c.Query("type", string(kernel.OpportunityTypeProject)))

	id := kernel.NewOpportunityID(c.Params("id"))
	resp, err := h.service.ListByOpportunity(c.Context(), id, opType)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GET /api/admin/applications/export
func (h *ApplicationHandlers) handleExport(c *fiber.Ctx) error {
	filter := application.ListFilter{
		OpportunityType: c.Query("opportunityType"),
		Status:          c.Query("status"),
	}

	data, filename, err := h.service.ExportXLSX(c.Context(), filter)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
