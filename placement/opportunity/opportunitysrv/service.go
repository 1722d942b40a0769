package opportunitysrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/opportunity"
)

type Service struct {
	repo         opportunity.Repository
	applications opportunity.ApplicationState
}

func NewService(repo opportunity.Repository, applications opportunity.ApplicationState) *Service {
	return &Service{repo: repo, applications: applications}
}

// ============ Admin Operations ============

func (s *Service) Create(ctx context.Context, opType kernel.OpportunityType, createdBy kernel.UserID, req opportunity.CreateRequest) (*opportunity.AdminListing, error) {
	if !opType.IsValid() {
		return nil, opportunity.ErrInvalidType()
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Domain) == "" ||
		req.StudentsRequired == nil || strings.TrimSpace(req.GoogleFormLink) == "" {
		return nil, opportunity.ErrMissingFields()
	}

	now := time.Now().UTC()
	o := &opportunity.Opportunity{
		ID:               kernel.NewOpportunityID(uuid.New().String()),
		Type:             opType,
		Title:            req.Title,
		Domain:           req.Domain,
		StudentsRequired: *req.StudentsRequired,
		Duration:         req.Duration,
		Deadline:         req.Deadline,
		GoogleFormLink:   req.GoogleFormLink,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Professors:       orEmptyArray(req.Professors),
		Students:         orEmptyArray(req.Students),
		CreatedBy:        createdBy,
		Status:           opportunity.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	logx.Infof("Opportunity created: %s (%s)", o.ID, o.Type)
	return &opportunity.AdminListing{Opportunity: *o, ApplicationCount: 0}, nil
}

// ListForAdmin returns every opportunity of the type with its application
// count, newest first.
func (s *Service) ListForAdmin(ctx context.Context, opType kernel.OpportunityType) ([]opportunity.AdminListing, error) {
	if !opType.IsValid() {
		return nil, opportunity.ErrInvalidType()
	}

	items, err := s.repo.ListByType(ctx, opType)
	if err != nil {
		return nil, err
	}

	listings := make([]opportunity.AdminListing, 0, len(items))
	for _, o := range items {
		count, err := s.applications.CountByOpportunity(ctx, o.ID, o.Type)
		if err != nil {
			return nil, err
		}
		listings = append(listings, opportunity.AdminListing{
			Opportunity:      o,
			ApplicationCount: count,
		})
	}
	return listings, nil
}

func (s *Service) Update(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType, req opportunity.UpdateRequest) error {
	o, err := s.repo.GetByID(ctx, id, opType)
	if err != nil {
		return err
	}

	if req.Title != nil {
		o.Title = *req.Title
	}
	if req.Domain != nil {
		o.Domain = *req.Domain
	}
	if req.StudentsRequired != nil {
		o.StudentsRequired = *req.StudentsRequired
	}
	if req.Duration != nil {
		o.Duration = *req.Duration
	}
	if req.Deadline != nil {
		o.Deadline = *req.Deadline
	}
	if req.GoogleFormLink != nil {
		o.GoogleFormLink = *req.GoogleFormLink
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Requirements != nil {
		o.Requirements = *req.Requirements
	}
	if req.Professors != nil {
		o.Professors = pq.StringArray(req.Professors)
	}
	if req.Students != nil {
		o.Students = pq.StringArray(req.Students)
	}
	if req.Status != nil {
		status := opportunity.Status(*req.Status)
		if status != opportunity.StatusActive && status != opportunity.StatusClosed {
			return opportunity.ErrInvalidStatus()
		}
		o.Status = status
	}
	o.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, o)
}

func (s *Service) Delete(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) error {
	if !opType.IsValid() {
		return opportunity.ErrInvalidType()
	}
	return s.repo.Delete(ctx, id, opType)
}

// ============ Student Operations ============

// ListForStudent returns active opportunities of the type annotated with the
// student's own application state.
func (s *Service) ListForStudent(ctx context.Context, studentID kernel.UserID, opType kernel.OpportunityType) ([]opportunity.StudentListing, error) {
	if !opType.IsValid() {
		return nil, opportunity.ErrInvalidType()
	}

	items, err := s.repo.ListActiveByType(ctx, opType)
	if err != nil {
		return nil, err
	}

	listings := make([]opportunity.StudentListing, 0, len(items))
	for _, o := range items {
		status, err := s.applications.StatusForStudent(ctx, studentID, o.ID, o.Type)
		if err != nil {
			return nil, err
		}
		listings = append(listings, opportunity.StudentListing{
			Opportunity:       o,
			HasApplied:        status != nil,
			ApplicationStatus: status,
		})
	}
	return listings, nil
}

func orEmptyArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}
