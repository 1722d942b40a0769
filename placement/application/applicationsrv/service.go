package applicationsrv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/application"
)

type Service struct {
	repo          application.Repository
	students      application.StudentReader
	opportunities application.OpportunityReader
}

func NewService(
	repo application.Repository,
	students application.StudentReader,
	opportunities application.OpportunityReader,
) *Service {
	return &Service{
		repo:          repo,
		students:      students,
		opportunities: opportunities,
	}
}

// ============ Student Operations ============

func (s *Service) Submit(ctx context.Context, studentID kernel.UserID, req application.SubmitRequest) (*application.Application, error) {
	if req.OpportunityID == "" || req.OpportunityType == "" || req.ResumeLink == "" || req.SubmissionLink == "" {
		return nil, application.ErrMissingFields()
	}

	opType := kernel.OpportunityType(req.OpportunityType)
	if !opType.IsValid() {
		return nil, application.ErrInvalidType()
	}

	opportunityID := kernel.NewOpportunityID(req.OpportunityID)
	opp, err := s.opportunities.GetByID(ctx, opportunityID, opType)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByStudentAndOpportunity(ctx, studentID, opportunityID, opType)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, application.ErrAlreadyApplied()
	}

	resumeLink := strings.TrimSpace(req.ResumeLink)
	submissionLink := strings.TrimSpace(req.SubmissionLink)
	if !kernel.DriveLink(resumeLink).IsValid() {
		return nil, application.ErrInvalidResumeLink()
	}
	if !kernel.DriveLink(submissionLink).IsValid() {
		return nil, application.ErrInvalidSubmissionLink()
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &application.Application{
		ID:               kernel.NewApplicationID(uuid.New().String()),
		StudentID:        studentID,
		StudentName:      orDefault(student.Name, "Unknown"),
		StudentEmail:     student.Email,
		StudentBranch:    orDefault(student.Field, "Not specified"),
		StudentYear:      orDefault(student.Year, "Not specified"),
		StudentCGPA:      student.CGPA,
		OpportunityID:    opportunityID,
		OpportunityType:  opType,
		OpportunityTitle: opp.Title,
		ResumeLink:       resumeLink,
		SubmissionLink:   submissionLink,
		AdditionalLinks:  orEmptyArray(req.AdditionalLinks),
		CoverLetter:      req.CoverLetter,
		Status:           application.StatusPending,
		AdminNotes:       "",
		AppliedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logx.Infof("Application submitted: %s -> %s (%s)", studentID, opportunityID, opType)
	return a, nil
}

func (s *Service) ListByStudent(ctx context.Context, studentID kernel.UserID) ([]application.Application, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Update lets a student revise a pending application.
func (s *Service) Update(ctx context.Context, studentID kernel.UserID, id kernel.ApplicationID, req application.UpdateRequest) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.StudentID != studentID {
		return application.ErrNotFound()
	}
	if a.Status != application.StatusPending {
		return application.ErrUpdateNotPending()
	}

	if req.ResumeLink != nil {
		a.ResumeLink = strings.TrimSpace(*req.ResumeLink)
	}
	if req.SubmissionLink != nil {
		a.SubmissionLink = strings.TrimSpace(*req.SubmissionLink)
	}
	if req.AdditionalLinks != nil {
		a.AdditionalLinks = pq.StringArray(req.AdditionalLinks)
	}
	if req.CoverLetter != nil {
		a.CoverLetter = *req.CoverLetter
	}
	a.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, a)
}

// Withdraw removes a pending application.
func (s *Service) Withdraw(ctx context.Context, studentID kernel.UserID, id kernel.ApplicationID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.StudentID != studentID {
		return application.ErrNotFound()
	}
	if a.Status != application.StatusPending {
		return application.ErrWithdrawNotPending()
	}

	return s.repo.Delete(ctx, id, studentID)
}

// ============ Admin Operations ============

func (s *Service) ListAll(ctx context.Context, filter application.ListFilter) (*application.AdminListResponse, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []application.Application{}
	}
	return &application.AdminListResponse{
		Applications: items,
		Total:        len(items),
	}, nil
}

// UpdateStatus moves an application to approved, rejected or back to
// pending, stamping the reviewer.
func (s *Service) UpdateStatus(ctx context.Context, reviewerID kernel.UserID, id kernel.ApplicationID, req application.StatusUpdateRequest) (application.Status, error) {
	status := application.Status(req.Status)
	if !status.IsValid() {
		return "", application.ErrInvalidStatus()
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	a.Status = status
	a.AdminNotes = req.AdminNotes
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &now
	a.UpdatedAt = now

	if err := s.repo.Update(ctx, a); err != nil {
		return "", err
	}
	logx.Infof("Application %s %s by %s", id, status, reviewerID)
	return status, nil
}

// ListByOpportunity returns an opportunity's applications with per-status
// counts.
func (s *Service) ListByOpportunity(ctx context.Context, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) (*application.OpportunityApplicationsResponse, error) {
	items, err := s.repo.ListByOpportunity(ctx, opportunityID, opType)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []application.Application{}
	}

	stats := application.Stats{Total: len(items)}
	for _, a := range items {
		switch a.Status {
		case application.StatusPending:
			stats.Pending++
		case application.StatusApproved:
			stats.Approved++
		case application.StatusRejected:
			stats.Rejected++
		}
	}

	return &application.OpportunityApplicationsResponse{
		Applications: items,
		Stats:        stats,
	}, nil
}

// ============ Cross-domain Ports ============

// CountByStudent implements user.ApplicationCounter.
func (s *Service) CountByStudent(ctx context.Context, studentID kernel.UserID) (int, error) {
	return s.repo.CountByStudent(ctx, studentID)
}

// CountByOpportunity implements part of opportunity.ApplicationState.
func (s *Service) CountByOpportunity(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (int, error) {
	return s.repo.CountByOpportunity(ctx, id, opType)
}

// StatusForStudent implements part of opportunity.ApplicationState.
func (s *Service) StatusForStudent(ctx context.Context, studentID kernel.UserID, id kernel.OpportunityID, opType kernel.OpportunityType) (*string, error) {
	a, err := s.repo.GetByStudentAndOpportunity(ctx, studentID, id, opType)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	status := string(a.Status)
	return &status, nil
}

func isNotFound(err error) bool {
	var appErr *errx.Error
	return errors.As(err, &appErr) && appErr.Code == application.CodeNotFound
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orEmptyArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}
