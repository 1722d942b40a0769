package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carevo/platform/pkg/kernel"
)

const authContextKey = "auth_context"

// TokenCookieName is the cookie checked when no Authorization header is
// present, so browser clients can rely on the session cookie alone.
const TokenCookieName = "token"

// AuthContext is the authenticated identity attached to a request.
type AuthContext struct {
	UserID   kernel.UserID
	Email    kernel.Email
	UserType kernel.UserType
}

// IsAdmin reports whether the identity may use admin endpoints.
func (a AuthContext) IsAdmin() bool {
	return a.UserType == kernel.UserTypeAdmin || a.UserType == kernel.UserTypePlacementCell
}

// GetAuthContext returns the identity stored by the middleware.
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(AuthContext)
	return authCtx, ok
}

// Middleware guards routes with bearer token authentication.
type Middleware struct {
	tokens TokenService
}

func NewMiddleware(tokens TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate validates the access token and stores the AuthContext on the
// request.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return ErrNotAuthenticated()
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			return err
		}

		c.Locals(authContextKey, AuthContext{
			UserID:   claims.UserID,
			Email:    claims.Email,
			UserType: claims.UserType,
		})
		return c.Next()
	}
}

// OptionalAuthenticate stores the AuthContext when a valid token is present
// but lets unauthenticated requests through. Handlers decide how to respond.
func (m *Middleware) OptionalAuthenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Next()
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			return c.Next()
		}

		c.Locals(authContextKey, AuthContext{
			UserID:   claims.UserID,
			Email:    claims.Email,
			UserType: claims.UserType,
		})
		return c.Next()
	}
}

// RequireAdmin rejects authenticated requests from non-admin users. It must
// run after Authenticate.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrNotAuthenticated()
		}
		if !authCtx.IsAdmin() {
			return ErrForbiddenUserType().WithDetail("user_type", authCtx.UserType)
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies(TokenCookieName)
}
