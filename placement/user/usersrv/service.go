package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/user"
)

type Service struct {
	repo         user.Repository
	projects     user.ProjectRepository
	applications user.ApplicationCounter
}

func NewService(repo user.Repository, projects user.ProjectRepository, applications user.ApplicationCounter) *Service {
	return &Service{
		repo:         repo,
		projects:     projects,
		applications: applications,
	}
}

// ============================================================================
// Profile
// ============================================================================

func (s *Service) GetProfile(ctx context.Context, id kernel.UserID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *Service) UpdateProfile(ctx context.Context, id kernel.UserID, req user.UpdateProfileRequest) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Field != nil {
		u.Field = *req.Field
	}
	if req.Year != nil {
		u.Year = *req.Year
	}
	if req.CGPA != nil {
		u.CGPA = *req.CGPA
	}
	if req.Mobile != nil {
		u.Mobile = kernel.Phone(*req.Mobile)
	}
	if req.ResumeURL != nil {
		u.ResumeURL = *req.ResumeURL
	}
	if req.PerformanceDocURL != nil {
		u.PerformanceDocURL = *req.PerformanceDocURL
	}
	if req.RollNo != nil {
		u.RollNo = *req.RollNo
	}
	if req.Skills != nil {
		u.Skills = pq.StringArray(*req.Skills)
	}
	if req.TechStack != nil {
		u.TechStack = pq.StringArray(*req.TechStack)
	}
	if req.AITools != nil {
		u.AITools = pq.StringArray(*req.AITools)
	}
	if req.Experiences != nil {
		u.Experiences = *req.Experiences
	}
	if req.Certifications != nil {
		u.Certifications = *req.Certifications
	}
	if req.Projects != nil {
		u.Projects = *req.Projects
	}
	if req.OnboardingCompleted != nil {
		u.OnboardingCompleted = *req.OnboardingCompleted
	}
	u.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, u)
}

// ResumeURL implements ats.ProfileResumeReader.
func (s *Service) ResumeURL(ctx context.Context, id kernel.UserID) (string, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.ResumeURL, nil
}

// ============================================================================
// Onboarding
// ============================================================================

// SaveOnboardingStep stores one onboarding screen on the student profile.
// Steps can arrive in any order and be re-submitted.
func (s *Service) SaveOnboardingStep(ctx context.Context, id kernel.UserID, req user.OnboardingRequest) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch req.Step {
	case user.StepBasicInfo:
		u.Field = req.Data.Field
		u.Year = req.Data.Year
		u.Mobile = kernel.Phone(req.Data.Mobile)
		u.CGPA = req.Data.CGPA
		u.RollNo = req.Data.RollNo
	case user.StepExperiences:
		u.Experiences = orEmpty(req.Data.Experiences)
		if req.Data.LinkedinProfile != "" {
			u.LinkedinProfile = req.Data.LinkedinProfile
		}
	case user.StepCertifications:
		u.Certifications = orEmpty(req.Data.Achievements)
	case user.StepProjects:
		u.Projects = orEmpty(req.Data.Projects)
		if req.Data.GithubProfile != "" {
			u.GithubProfile = req.Data.GithubProfile
		}
	case user.StepSkills:
		u.Skills = pq.StringArray(req.Data.Skills)
	case user.StepTechStack:
		u.TechStack = pq.StringArray(req.Data.TechStack)
	case user.StepAITools:
		u.AITools = pq.StringArray(req.Data.AITools)
	case "":
		// A bare completion request carries no step payload.
	default:
		return user.ErrInvalidStep().WithDetail("step", req.Step)
	}

	if req.Completed {
		u.OnboardingCompleted = true
		logx.Infof("Onboarding completed for user %s", u.Email)
	}
	u.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, u)
}

func (s *Service) OnboardingStatus(ctx context.Context, id kernel.UserID) (*user.OnboardingStatusResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &user.OnboardingStatusResponse{OnboardingCompleted: u.OnboardingCompleted}, nil
}

func orEmpty(l user.FreeformList) user.FreeformList {
	if l == nil {
		return user.FreeformList{}
	}
	return l
}

// ============================================================================
// Student Projects
// ============================================================================

func (s *Service) CreateProject(ctx context.Context, userID kernel.UserID, req user.StudentProjectRequest) (*user.StudentProject, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, user.ErrTitleRequired()
	}

	now := time.Now().UTC()
	p := &user.StudentProject{
		ID:          kernel.NewStudentProjectID(uuid.New().String()),
		UserID:      userID,
		Title:       req.Title,
		GithubLink:  req.GithubLink,
		WebsiteLink: req.WebsiteLink,
		TechStack:   pq.StringArray(req.TechStack),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context, userID kernel.UserID) ([]user.StudentProject, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *Service) UpdateProject(ctx context.Context, userID kernel.UserID, id kernel.StudentProjectID, req user.UpdateStudentProjectRequest) error {
	p, err := s.projects.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.GithubLink != nil {
		p.GithubLink = *req.GithubLink
	}
	if req.WebsiteLink != nil {
		p.WebsiteLink = *req.WebsiteLink
	}
	if req.TechStack != nil {
		p.TechStack = pq.StringArray(*req.TechStack)
	}
	p.UpdatedAt = time.Now().UTC()

	return s.projects.Update(ctx, p)
}

func (s *Service) DeleteProject(ctx context.Context, userID kernel.UserID, id kernel.StudentProjectID) error {
	return s.projects.Delete(ctx, id, userID)
}

// ============================================================================
// Admin Directory
// ============================================================================

// ListStudents builds the admin student directory with per-student project
// and application counts.
func (s *Service) ListStudents(ctx context.Context) ([]user.DirectoryEntry, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]user.DirectoryEntry, 0, len(students))
	for _, student := range students {
		projectsCount, err := s.projects.CountByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		applicationsCount, err := s.applications.CountByStudent(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, user.DirectoryEntry{
			User:              student,
			ProjectsCount:     projectsCount,
			ApplicationsCount: applicationsCount,
		})
	}
	return entries, nil
}
