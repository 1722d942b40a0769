package application

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeNotFound              = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeMissingFields         = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Missing required fields")
	CodeInvalidType           = ErrRegistry.Register("INVALID_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid opportunity type")
	CodeInvalidStatus         = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid status. Must be 'approved', 'rejected', or 'pending'")
	CodeAlreadyApplied        = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeValidation, http.StatusBadRequest, "You have already applied to this opportunity")
	CodeInvalidResumeLink     = ErrRegistry.Register("INVALID_RESUME_LINK", errx.TypeValidation, http.StatusBadRequest, "Invalid resume link. Must be a Google Drive link")
	CodeInvalidSubmissionLink = ErrRegistry.Register("INVALID_SUBMISSION_LINK", errx.TypeValidation, http.StatusBadRequest, "Invalid submission link. Must be a Google Drive link")
	CodeUpdateNotPending      = ErrRegistry.Register("UPDATE_NOT_PENDING", errx.TypeValidation, http.StatusBadRequest, "Can only update pending applications")
	CodeWithdrawNotPending    = ErrRegistry.Register("WITHDRAW_NOT_PENDING", errx.TypeValidation, http.StatusBadRequest, "Can only withdraw pending applications")
	CodeStudentsOnly          = ErrRegistry.Register("STUDENTS_ONLY", errx.TypeAuthorization, http.StatusForbidden, "Only students can submit applications")
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

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrInvalidResumeLink() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeLink)
}

func ErrInvalidSubmissionLink() *errx.Error {
	return ErrRegistry.New(CodeInvalidSubmissionLink)
}

func ErrUpdateNotPending() *errx.Error {
	return ErrRegistry.New(CodeUpdateNotPending)
}

func ErrWithdrawNotPending() *errx.Error {
	return ErrRegistry.New(CodeWithdrawNotPending)
}

func ErrStudentsOnly() *errx.Error {
	return ErrRegistry.New(CodeStudentsOnly)
}
