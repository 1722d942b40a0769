package application

import (
	"time"

	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Application is a student's submission to an opportunity. The student
// profile fields are snapshotted at submission time so admin views and
// exports stay stable when the profile changes later.
type Application struct {
	ID              kernel.ApplicationID   `db:"id" json:"id"`
	StudentID       kernel.UserID          `db:"student_id" json:"studentId"`
	StudentName     string                 `db:"student_name" json:"studentName"`
	StudentEmail    kernel.Email           `db:"student_email" json:"studentEmail"`
	StudentBranch   string                 `db:"student_branch" json:"studentBranch"`
	StudentYear     string                 `db:"student_year" json:"studentYear"`
	StudentCGPA     float64                `db:"student_cgpa" json:"studentCGPA"`
	OpportunityID   kernel.OpportunityID   `db:"opportunity_id" json:"opportunityId"`
	OpportunityType kernel.OpportunityType `db:"opportunity_type" json:"opportunityType"`
	OpportunityTitle string                `db:"opportunity_title" json:"opportunityTitle"`
	ResumeLink      string                 `db:"resume_link" json:"resumeLink"`
	SubmissionLink  string                 `db:"submission_link" json:"submissionLink"`
	AdditionalLinks pq.StringArray         `db:"additional_links" json:"additionalLinks"`
	CoverLetter     string                 `db:"cover_letter" json:"coverLetter"`
	Status          Status                 `db:"status" json:"status"`
	AdminNotes      string                 `db:"admin_notes" json:"adminNotes"`
	ReviewedBy      *kernel.UserID         `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time             `db:"reviewed_at" json:"reviewedAt,omitempty"`
	AppliedAt       time.Time              `db:"applied_at" json:"appliedAt"`
	UpdatedAt       time.Time              `db:"updated_at" json:"updatedAt"`
}
