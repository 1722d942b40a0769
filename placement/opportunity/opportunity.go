package opportunity

import (
	"time"

	"github.com/lib/pq"

	"github.com/carevo/platform/pkg/kernel"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Opportunity is an admin posting students apply to. Projects, research
// papers and patents share one shape and are told apart by Type.
type Opportunity struct {
	ID               kernel.OpportunityID   `db:"id" json:"id"`
	Type             kernel.OpportunityType `db:"opportunity_type" json:"opportunityType"`
	Title            string                 `db:"title" json:"title"`
	Domain           string                 `db:"domain" json:"domain"`
	StudentsRequired int                    `db:"students_required" json:"studentsRequired"`
	Duration         string                 `db:"duration" json:"duration"`
	Deadline         string                 `db:"deadline" json:"deadline"`
	GoogleFormLink   string                 `db:"google_form_link" json:"googleFormLink"`
	Description      string                 `db:"description" json:"description"`
	Requirements     string                 `db:"requirements" json:"requirements"`
	Professors       pq.StringArray         `db:"professors" json:"professors"`
	Students         pq.StringArray         `db:"students" json:"students"`
	CreatedBy        kernel.UserID          `db:"created_by" json:"createdBy"`
	Status           Status                 `db:"status" json:"status"`
	CreatedAt        time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time              `db:"updated_at" json:"updatedAt"`
}

// AdminListing is an opportunity annotated with its application count.
type AdminListing struct {
	Opportunity
	ApplicationCount int `json:"applicationCount"`
}

// StudentListing is an active opportunity annotated with the viewing
// student's application state.
type StudentListing struct {
	Opportunity
	HasApplied        bool    `json:"hasApplied"`
	ApplicationStatus *string `json:"applicationStatus"`
}
