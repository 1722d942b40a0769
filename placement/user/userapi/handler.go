package userapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
	"github.com/carevo/platform/placement/user/usersrv"
)

type UserHandlers struct {
	service *usersrv.Service
}

func NewUserHandlers(service *usersrv.Service) *UserHandlers {
	return &UserHandlers{service: service}
}

func (h *UserHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	app.Get("/api/user", authMiddleware.Authenticate(), h.handleGetProfile)
	app.Put("/api/user", authMiddleware.Authenticate(), h.handleUpdateProfile)

	app.Post("/api/onboarding", authMiddleware.Authenticate(), h.handleOnboarding)
	app.Get("/api/onboarding/status", authMiddleware.Authenticate(), h.handleOnboardingStatus)

	projects := app.Group("/api/user/projects", authMiddleware.Authenticate())
	projects.Get("/", h.handleListProjects)
	projects.Post("/", h.handleCreateProject)
	projects.Put("/:id", h.handleUpdateProject)
	projects.Delete("/:id", h.handleDeleteProject)

	app.Get("/api/admin/students",
		authMiddleware.Authenticate(), authMiddleware.RequireAdmin(),
		h.handleListStudents)
}

// GET /api/user
func (h *UserHandlers) handleGetProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	u, err := h.service.GetProfile(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// PUT /api/user
func (h *UserHandlers) handleUpdateProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req user.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.UpdateProfile(c.Context(), authCtx.UserID, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}

// POST /api/onboarding
func (h *UserHandlers) handleOnboarding(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req user.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.SaveOnboardingStep(c.Context(), authCtx.UserID, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Onboarding data saved successfully"})
}

// GET /api/onboarding/status
func (h *UserHandlers) handleOnboardingStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	status, err := h.service.OnboardingStatus(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(status)
}

// GET /api/user/projects
func (h *UserHandlers) handleListProjects(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	projects, err := h.service.ListProjects(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// POST /api/user/projects
func (h *UserHandlers) handleCreateProject(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req user.StudentProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	project, err := h.service.CreateProject(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully",
		"project": project,
	})
}

// PUT /api/user/projects/:id
func (h *UserHandlers) handleUpdateProject(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	var req user.UpdateStudentProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id := kernel.NewStudentProjectID(c.Params("id"))
	if err := h.service.UpdateProject(c.Context(), authCtx.UserID, id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Project updated successfully"})
}

// DELETE /api/user/projects/:id
func (h *UserHandlers) handleDeleteProject(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrNotAuthenticated()
	}

	id := kernel.NewStudentProjectID(c.Params("id"))
	if err := h.service.DeleteProject(c.Context(), authCtx.UserID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

// GET /api/admin/students
func (h *UserHandlers) handleListStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"students": students})
}
