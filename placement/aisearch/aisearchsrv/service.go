package aisearchsrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carevo/platform/internal/ai/studentsearch"
	"github.com/carevo/platform/internal/spreadsheet"
	"github.com/carevo/platform/pkg/logx"
	"github.com/carevo/platform/placement/aisearch"
	"github.com/carevo/platform/placement/user"
)

type Service struct {
	engine   aisearch.Engine
	students aisearch.StudentLister
}

func NewService(engine aisearch.Engine, students aisearch.StudentLister) *Service {
	return &Service{engine: engine, students: students}
}

// Chat runs a natural-language query over every student profile and returns
// the matching profiles.
func (s *Service) Chat(ctx context.Context, query string) (*aisearch.ChatResponse, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]studentsearch.StudentProfile, 0, len(students))
	for _, u := range students {
		profiles = append(profiles, toProfile(&u))
	}

	logx.Infof("AI student search over %d profiles", len(profiles))
	result, err := s.engine.Filter(ctx, query, profiles)
	if err != nil {
		return nil, err
	}

	matched := make(map[string]struct{}, len(result.FilteredStudentIDs))
	for _, id := range result.FilteredStudentIDs {
		matched[id] = struct{}{}
	}

	filtered := make([]studentsearch.StudentProfile, 0, len(matched))
	for _, p := range profiles {
		if _, ok := matched[p.ID]; ok {
			filtered = append(filtered, p)
		}
	}

	return &aisearch.ChatResponse{
		Response: result.Response,
		Students: filtered,
	}, nil
}

var exportHeaders = []string{
	"Name", "Email", "Roll No", "Branch", "Year", "CGPA",
	"Mobile", "Skills", "Tech Stack", "AI Tools",
	"LinkedIn", "GitHub", "Experience Count", "Projects Count", "Certifications Count",
}

// ExportXLSX renders the given student set into a styled workbook.
func (s *Service) ExportXLSX(students []studentsearch.StudentProfile) ([]byte, string, error) {
	rows := make([][]any, 0, len(students))
	for _, p := range students {
		rows = append(rows, []any{
			p.Name,
			p.Email,
			p.RollNo,
			p.Field,
			p.Year,
			p.CGPA,
			p.Mobile,
			strings.Join(p.Skills, ", "),
			strings.Join(p.TechStack, ", "),
			strings.Join(p.AITools, ", "),
			p.LinkedinProfile,
			p.GithubProfile,
			len(p.Experiences),
			len(p.Projects),
			len(p.Certifications),
		})
	}

	data, err := spreadsheet.Build("Filtered Students", exportHeaders, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("filtered_students_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	return data, filename, nil
}

func toProfile(u *user.User) studentsearch.StudentProfile {
	return studentsearch.StudentProfile{
		ID:              u.ID.String(),
		Name:            u.Name,
		Email:           u.Email.String(),
		Field:           u.Field,
		Year:            u.Year,
		CGPA:            u.CGPA,
		RollNo:          u.RollNo,
		Skills:          []string(u.Skills),
		TechStack:       []string(u.TechStack),
		AITools:         []string(u.AITools),
		Experiences:     []map[string]any(u.Experiences),
		Certifications:  []map[string]any(u.Certifications),
		Projects:        []map[string]any(u.Projects),
		LinkedinProfile: u.LinkedinProfile,
		GithubProfile:   u.GithubProfile,
		Mobile:          u.Mobile.String(),
	}
}
