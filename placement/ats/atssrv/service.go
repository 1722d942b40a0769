package atssrv

import (
	"context"
	"strings"

	"github.com/carevo/platform/internal/docext"
	"github.com/carevo/platform/pkg/fsx"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/ats"
	"github.com/google/uuid"
)

type Service struct {
	profiles ats.ProfileResumeReader
	fetcher  ats.ResumeFetcher
	archive  fsx.FileWriter // optional, nil disables archiving
}

// NewService creates a new ATS analysis service. The archive writer may be
// nil, in which case uploaded resumes are analyzed but not retained.
func NewService(profiles ats.ProfileResumeReader, fetcher ats.ResumeFetcher, archive fsx.FileWriter) *Service {
	return &Service{
		profiles: profiles,
		fetcher:  fetcher,
		archive:  archive,
	}
}

// AnalyzeUpload runs the extraction, parsing and scoring pipeline over an
// uploaded resume file.
func (s *Service) AnalyzeUpload(ctx context.Context, userID kernel.UserID, req ats.UploadRequest) (*ats.UploadAnalysisResponse, error) {
	if req.Filename == "" || len(req.Data) == 0 {
		return nil, ats.ErrNoFileUploaded()
	}

	format, ok := docext.FormatFromFilename(req.Filename)
	if !ok {
		return nil, ats.ErrUnsupportedFormat().WithDetail("filename", req.Filename)
	}

	text, err := docext.ExtractText(req.Data, format)
	if err != nil {
		return nil, ats.ErrRegistry.NewWithCause(ats.CodeExtractionFailed, err).
			WithDetail("filename", req.Filename)
	}

	parsed := ats.ParseResume(text)
	score, err := ats.CalculateScore(parsed, text)
	if err != nil {
		return nil, err
	}

	s.archiveUpload(ctx, userID, req)

	return &ats.UploadAnalysisResponse{
		Success:    true,
		Filename:   req.Filename,
		ParsedData: parsed,
		ATSScore:   score,
	}, nil
}

// AnalyzeSavedResume runs the pipeline against the resume link stored on the
// student's profile.
func (s *Service) AnalyzeSavedResume(ctx context.Context, userID kernel.UserID) (*ats.SavedResumeAnalysisResponse, error) {
	url, err := s.profiles.ResumeURL(ctx, userID)
	if err != nil {
		return nil, err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ats.ErrNoResumeURL()
	}

	link := kernel.DriveLink(url)
	if !link.IsValid() {
		return nil, ats.ErrInvalidResumeURL().WithDetail("resume_url", url)
	}

	data, contentType, err := s.fetcher.Fetch(ctx, link.DirectDownloadURL())
	if err != nil {
		return nil, ats.ErrRegistry.NewWithCause(ats.CodeDownloadFailed, err)
	}

	text, err := s.extractByHint(data, url, contentType)
	if err != nil {
		return nil, ats.ErrRegistry.NewWithCause(ats.CodeExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ats.ErrEmptyDocument()
	}

	parsed := ats.ParseResume(text)
	score, err := ats.CalculateScore(parsed, text)
	if err != nil {
		return nil, err
	}

	return &ats.SavedResumeAnalysisResponse{
		ParsedData: parsed,
		ATSScore:   score,
	}, nil
}

// extractByHint infers the document format from the source URL and the
// response content type, falling back to plain text.
func (s *Service) extractByHint(data []byte, url, contentType string) (string, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(url, ".pdf") || strings.Contains(ct, "application/pdf"):
		return docext.ExtractText(data, docext.FormatPDF)
	case strings.Contains(url, ".docx") ||
		strings.Contains(ct, "application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return docext.ExtractText(data, docext.FormatDOCX)
	default:
		return docext.ExtractText(data, docext.FormatPlainText)
	}
}

// archiveUpload keeps a copy of the uploaded file for later review. Archive
// failures never fail the analysis.
func (s *Service) archiveUpload(ctx context.Context, userID kernel.UserID, req ats.UploadRequest) {
	if s.archive == nil {
		return
	}
	path := strings.Join([]string{"ats-uploads", userID.String(), uuid.New().String() + "-" + req.Filename}, "/")
	if err := s.archive.WriteFile(ctx, path, req.Data); err != nil {
		logx.Warnf("Failed to archive ATS upload %s: %v", path, err)
	}
}
