package auth

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeNotAuthenticated  = ErrRegistry.Register("NOT_AUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "Not authenticated")
	CodeInvalidToken      = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeForbiddenUserType = ErrRegistry.Register("FORBIDDEN_USER_TYPE", errx.TypeAuthorization, http.StatusForbidden, "Admin access required")
	CodeTokenGeneration   = ErrRegistry.Register("TOKEN_GENERATION", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
)

// Helper functions
func ErrNotAuthenticated() *errx.Error {
	return ErrRegistry.New(CodeNotAuthenticated)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrForbiddenUserType() *errx.Error {
	return ErrRegistry.New(CodeForbiddenUserType)
}

func ErrTokenGeneration() *errx.Error {
	return ErrRegistry.New(CodeTokenGeneration)
}
