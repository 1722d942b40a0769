package help

import (
	"time"

	"github.com/carevo/platform/pkg/kernel"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

// Report is a support request filed by any authenticated user. The user
// snapshot keeps the report readable even if the account changes.
type Report struct {
	ID          kernel.ReportID `db:"id" json:"id"`
	UserID      kernel.UserID   `db:"user_id" json:"userId"`
	UserEmail   kernel.Email    `db:"user_email" json:"userEmail"`
	UserName    string          `db:"user_name" json:"userName"`
	UserType    kernel.UserType `db:"user_type" json:"userType"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Status      Status          `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
