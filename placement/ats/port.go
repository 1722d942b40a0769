package ats

import (
	"context"

	"github.com/carevo/platform/pkg/kernel"
)

// ProfileResumeReader looks up the resume link stored on a student profile.
type ProfileResumeReader interface {
	// ResumeURL returns the stored resume link for a user, or empty when
	// none was saved.
	ResumeURL(ctx context.Context, userID kernel.UserID) (string, error)
}

// ResumeFetcher downloads a resume document from an external link.
type ResumeFetcher interface {
	// Fetch retrieves the document bytes and the response content type.
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}
