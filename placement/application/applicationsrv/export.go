package applicationsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/carevo/platform/internal/spreadsheet"
	"github.com/carevo/platform/placement/application"
)

var exportHeaders = []string{
	"Application ID", "Student Name", "Email", "Branch", "Year", "CGPA",
	"Opportunity Type", "Opportunity Title", "Resume Link", "Submission Link",
	"Status", "Applied Date", "Admin Notes",
}

// ExportXLSX renders the filtered applications into a styled workbook and
// returns the file bytes with a timestamped download name.
func (s *Service) ExportXLSX(ctx context.Context, filter application.ListFilter) ([]byte, string, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]any, 0, len(items))
	for _, a := range items {
		rows = append(rows, []any{
			a.ID.String(),
			a.StudentName,
			a.StudentEmail.String(),
			a.StudentBranch,
			a.StudentYear,
			a.StudentCGPA,
			string(a.OpportunityType),
			a.OpportunityTitle,
			a.ResumeLink,
			a.SubmissionLink,
			string(a.Status),
			a.AppliedAt.Format("2006-01-02 15:04"),
			a.AdminNotes,
		})
	}

	data, err := spreadsheet.Build("Applications", exportHeaders, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}
