package helpsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/help"
)

type Service struct {
	repo  help.Repository
	users help.UserReader
}

func NewService(repo help.Repository, users help.UserReader) *Service {
	return &Service{repo: repo, users: users}
}

// CreateReport files a support report for the authenticated user.
func (s *Service) CreateReport(ctx context.Context, userID kernel.UserID, req help.CreateReportRequest) (*help.Report, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, help.ErrMissingFields()
	}

	reporter, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := &help.Report{
		ID:          kernel.NewReportID(uuid.New().String()),
		UserID:      reporter.ID,
		UserEmail:   reporter.Email,
		UserName:    reporter.Name,
		UserType:    reporter.UserType,
		Title:       title,
		Description: description,
		Status:      help.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	logx.Infof("Help report filed: %s by %s", r.ID, r.UserID)
	return r, nil
}

// ListOwn returns the user's own reports.
func (s *Service) ListOwn(ctx context.Context, userID kernel.UserID) ([]help.Report, error) {
	reports, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []help.Report{}
	}
	return reports, nil
}

// ListAll returns every report for admin review.
func (s *Service) ListAll(ctx context.Context) ([]help.Report, error) {
	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []help.Report{}
	}
	return reports, nil
}
