package ats

import (
	"net/http"

	"github.com/carevo/platform/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ATS")

// Error codes
var (
	CodeNoFileUploaded    = ErrRegistry.Register("NO_FILE_UPLOADED", errx.TypeValidation, http.StatusBadRequest, "No resume file uploaded")
	CodeUnsupportedFormat = ErrRegistry.Register("UNSUPPORTED_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Unsupported file format. Please upload PDF, DOCX, or TXT")
	CodeExtractionFailed  = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from resume")
	CodeEmptyDocument     = ErrRegistry.Register("EMPTY_DOCUMENT", errx.TypeValidation, http.StatusBadRequest, "Could not extract any text from the resume")
	CodeInvalidInput      = ErrRegistry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid input for resume analysis")
	CodeNoResumeURL       = ErrRegistry.Register("NO_RESUME_URL", errx.TypeValidation, http.StatusBadRequest, "No resume link found on your profile")
	CodeInvalidResumeURL  = ErrRegistry.Register("INVALID_RESUME_URL", errx.TypeValidation, http.StatusBadRequest, "Resume link must be a Google Drive or Google Docs URL")
	CodeDownloadFailed    = ErrRegistry.Register("DOWNLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to download resume from link")
)

// Helper functions
func ErrNoFileUploaded() *errx.Error {
	return ErrRegistry.New(CodeNoFileUploaded)
}

func ErrUnsupportedFormat() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFormat)
}

func ErrExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeExtractionFailed)
}

func ErrEmptyDocument() *errx.Error {
	return ErrRegistry.New(CodeEmptyDocument)
}

func ErrInvalidInput() *errx.Error {
	return ErrRegistry.New(CodeInvalidInput)
}

func ErrNoResumeURL() *errx.Error {
	return ErrRegistry.New(CodeNoResumeURL)
}

func ErrInvalidResumeURL() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeURL)
}

func ErrDownloadFailed() *errx.Error {
	return ErrRegistry.New(CodeDownloadFailed)
}
