package user

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeUserNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserAlreadyExists  = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusBadRequest, "User already exists")
	CodeMissingFields      = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Required fields are missing")
	CodeInvalidUserType    = ErrRegistry.Register("INVALID_USER_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid userType. Must be one of: student, admin, placementCell")
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeInvalidEmail       = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email address")
	CodeProjectNotFound    = ErrRegistry.Register("PROJECT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Project not found")
	CodeTitleRequired      = ErrRegistry.Register("TITLE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Title is required")
	CodeInvalidStep        = ErrRegistry.Register("INVALID_STEP", errx.TypeValidation, http.StatusBadRequest, "Unknown onboarding step")
)

// Helper functions
func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeUserAlreadyExists)
}

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}

func ErrInvalidUserType() *errx.Error {
	return ErrRegistry.New(CodeInvalidUserType)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrProjectNotFound() *errx.Error {
	return ErrRegistry.New(CodeProjectNotFound)
}

func ErrTitleRequired() *errx.Error {
	return ErrRegistry.New(CodeTitleRequired)
}

func ErrInvalidStep() *errx.Error {
	return ErrRegistry.New(CodeInvalidStep)
}
