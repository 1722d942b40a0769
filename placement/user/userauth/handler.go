package userauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/iam/auth"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
)

type AuthHandlers struct {
	service *AuthService
}

func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

func (h *AuthHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	grp := app.Group("/api/auth")

	grp.Post("/signup", h.handleSignup)
	grp.Post("/login", h.handleLogin)
	grp.Get("/status", authMiddleware.OptionalAuthenticate(), h.handleStatus)
	grp.Post("/request-otp", h.handleRequestOTP)
	grp.Post("/reset-password", h.handleResetPassword)
}

// POST /api/auth/signup
func (h *AuthHandlers) handleSignup(c *fiber.Ctx) error {
	var req user.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resp, err := h.service.Signup(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// POST /api/auth/login
func (h *AuthHandlers) handleLogin(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GET /api/auth/status
//
// Unlike the rest of the API this endpoint never surfaces an auth error;
// a missing or invalid token just reports authenticated=false.
func (h *AuthHandlers) handleStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(user.StatusResponse{Authenticated: false})
	}

	resp, err := h.service.Status(c.Context(), authCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(user.StatusResponse{Authenticated: false})
	}
	return c.JSON(resp)
}

// POST /api/auth/request-otp
func (h *AuthHandlers) handleRequestOTP(c *fiber.Ctx) error {
	var req user.RequestPasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Email == "" {
		return user.ErrMissingFields().WithDetail("field", "email")
	}

	if err := h.service.RequestPasswordReset(c.Context(), kernel.Email(req.Email)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "If the account exists, an OTP has been sent"})
}

// POST /api/auth/reset-password
func (h *AuthHandlers) handleResetPassword(c *fiber.Ctx) error {
	var req user.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.ResetPassword(c.Context(), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
