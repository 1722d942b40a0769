package opportunity

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("OPPORTUNITY")

// Error codes
var (
	CodeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Opportunity not found")
	CodeMissingFields = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Missing required fields")
	CodeInvalidType   = ErrRegistry.Register("INVALID_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid opportunity type")
	CodeInvalidStatus = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid opportunity status")
)

// Helper functions
func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}

func ErrInvalidType() *errx.Error {
	return ErrRegistry.New(CodeInvalidType)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}
