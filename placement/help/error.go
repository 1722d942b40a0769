package help

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("HELP")

// Error codes
var (
	CodeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Help report not found")
	CodeMissingFields = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Title and description are required")
)

// Helper functions
func ErrReportNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}
