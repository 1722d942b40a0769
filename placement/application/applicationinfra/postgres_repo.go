package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/application"
)

type PostgresApplicationRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicationRepository(db *sqlx.DB) application.Repository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `
	id, student_id, student_name, student_email, student_branch,
	student_year, student_cgpa, opportunity_id, opportunity_type,
	opportunity_title, resume_link, submission_link, additional_links,
	cover_letter, status, admin_notes, reviewed_by, reviewed_at,
	applied_at, updated_at
`

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17, $18,
			$19, $20
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		a.ID,
		a.StudentID,
		a.StudentName,
		a.StudentEmail,
		a.StudentBranch,
		a.StudentYear,
		a.StudentCGPA,
		a.OpportunityID,
		a.OpportunityType,
		a.OpportunityTitle,
		a.ResumeLink,
		a.SubmissionLink,
		a.AdditionalLinks,
		a.CoverLetter,
		a.Status,
		a.AdminNotes,
		a.ReviewedBy,
		a.ReviewedAt,
		a.AppliedAt,
		a.UpdatedAt,
	)

	return err
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, application.ErrNotFound()
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByStudentAndOpportunity retrieves the student's application to an
// opportunity, if any
func (r *PostgresApplicationRepository) GetByStudentAndOpportunity(ctx context.Context, studentID kernel.UserID, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) (*application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE student_id = $1 AND opportunity_id = $2 AND opportunity_type = $3
	`

	row := r.db.QueryRowContext(ctx, query, studentID, opportunityID, opType)
	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, application.ErrNotFound()
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByStudent retrieves the student's applications, newest first
func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, studentID kernel.UserID) ([]application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE student_id = $1
		ORDER BY applied_at DESC
	`
	return r.list(ctx, query, studentID)
}

// List retrieves applications matching the filter, newest first
func (r *PostgresApplicationRepository) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	var args []any

	if filter.OpportunityType != "" {
		args = append(args, filter.OpportunityType)
		query += fmt.Sprintf(" AND opportunity_type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.OpportunityID != "" {
		args = append(args, filter.OpportunityID)
		query += fmt.Sprintf(" AND opportunity_id = $%d", len(args))
	}

	query += " ORDER BY applied_at DESC"
	return r.list(ctx, query, args...)
}

// ListByOpportunity retrieves applications for one opportunity, newest first
func (r *PostgresApplicationRepository) ListByOpportunity(ctx context.Context, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) ([]application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE opportunity_id = $1 AND opportunity_type = $2
		ORDER BY applied_at DESC
	`
	return r.list(ctx, query, opportunityID, opType)
}

// Update persists changes to an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	query := `
		UPDATE applications
		SET
			resume_link = $2,
			submission_link = $3,
			additional_links = $4,
			cover_letter = $5,
			status = $6,
			admin_notes = $7,
			reviewed_by = $8,
			reviewed_at = $9,
			updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		a.ID,
		a.ResumeLink,
		a.SubmissionLink,
		a.AdditionalLinks,
		a.CoverLetter,
		a.Status,
		a.AdminNotes,
		a.ReviewedBy,
		a.ReviewedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return application.ErrNotFound()
	}
	return nil
}

// Delete removes an application owned by the student
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID, studentID kernel.UserID) error {
	query := `DELETE FROM applications WHERE id = $1 AND student_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, studentID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return application.ErrNotFound()
	}
	return nil
}

// CountByStudent counts the student's applications
func (r *PostgresApplicationRepository) CountByStudent(ctx context.Context, studentID kernel.UserID) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE student_id = $1`

	var count int
	err := r.db.QueryRowContext(ctx, query, studentID).Scan(&count)
	return count, err
}

// CountByOpportunity counts applications for an opportunity
func (r *PostgresApplicationRepository) CountByOpportunity(ctx context.Context, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE opportunity_id = $1 AND opportunity_type = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, opportunityID, opType).Scan(&count)
	return count, err
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var a application.Application
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.StudentName,
		&a.StudentEmail,
		&a.StudentBranch,
		&a.StudentYear,
		&a.StudentCGPA,
		&a.OpportunityID,
		&a.OpportunityType,
		&a.OpportunityTitle,
		&a.ResumeLink,
		&a.SubmissionLink,
		&a.AdditionalLinks,
		&a.CoverLetter,
		&a.Status,
		&a.AdminNotes,
		&reviewedBy,
		&reviewedAt,
		&a.AppliedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reviewedBy.Valid {
		id := kernel.NewUserID(reviewedBy.String)
		a.ReviewedBy = &id
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		a.ReviewedAt = &t
	}
	return &a, nil
}
