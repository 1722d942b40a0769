package opportunityinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/opportunity"
)

type PostgresOpportunityRepository struct {
	db *sqlx.DB
}

func NewPostgresOpportunityRepository(db *sqlx.DB) opportunity.Repository {
	return &PostgresOpportunityRepository{db: db}
}

const opportunityColumns = `
	id, opportunity_type, title, domain, students_required,
	duration, deadline, google_form_link, description, requirements,
	professors, students, created_by, status, created_at, updated_at
`

// Create creates a new opportunity
func (r *PostgresOpportunityRepository) Create(ctx context.Context, o *opportunity.Opportunity) error {
	query := `
		INSERT INTO opportunities (` + opportunityColumns + `) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		o.ID,
		o.Type,
		o.Title,
		o.Domain,
		o.StudentsRequired,
		o.Duration,
		o.Deadline,
		o.GoogleFormLink,
		o.Description,
		o.Requirements,
		o.Professors,
		o.Students,
		o.CreatedBy,
		o.Status,
		o.CreatedAt,
		o.UpdatedAt,
	)

	return err
}

// GetByID retrieves an opportunity by ID and type
func (r *PostgresOpportunityRepository) GetByID(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (*opportunity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1 AND opportunity_type = $2`

	row := r.db.QueryRowContext(ctx, query, id, opType)
	o, err := scanOpportunity(row)
	if err == sql.ErrNoRows {
		return nil, opportunity.ErrNotFound()
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListByType retrieves all opportunities of a type, newest first
func (r *PostgresOpportunityRepository) ListByType(ctx context.Context, opType kernel.OpportunityType) ([]opportunity.Opportunity, error) {
	query := `
		SELECT ` + opportunityColumns + `
		FROM opportunities
		WHERE opportunity_type = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, opType)
}

// ListActiveByType retrieves active opportunities of a type, newest first
func (r *PostgresOpportunityRepository) ListActiveByType(ctx context.Context, opType kernel.OpportunityType) ([]opportunity.Opportunity, error) {
	query := `
		SELECT ` + opportunityColumns + `
		FROM opportunities
		WHERE opportunity_type = $1 AND status = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, opType, opportunity.StatusActive)
}

// Update persists changes to an existing opportunity
func (r *PostgresOpportunityRepository) Update(ctx context.Context, o *opportunity.Opportunity) error {
	query := `
		UPDATE opportunities
		SET
			title = $3,
			domain = $4,
			students_required = $5,
			duration = $6,
			deadline = $7,
			google_form_link = $8,
			description = $9,
			requirements = $10,
			professors = $11,
			students = $12,
			status = $13,
			updated_at = $14
		WHERE id = $1 AND opportunity_type = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		o.ID,
		o.Type,
		o.Title,
		o.Domain,
		o.StudentsRequired,
		o.Duration,
		o.Deadline,
		o.GoogleFormLink,
		o.Description,
		o.Requirements,
		o.Professors,
		o.Students,
		o.Status,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return opportunity.ErrNotFound()
	}
	return nil
}

// Delete removes an opportunity
func (r *PostgresOpportunityRepository) Delete(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) error {
	query := `DELETE FROM opportunities WHERE id = $1 AND opportunity_type = $2`

	result, err := r.db.ExecContext(ctx, query, id, opType)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return opportunity.ErrNotFound()
	}
	return nil
}

func (r *PostgresOpportunityRepository) list(ctx context.Context, query string, args ...any) ([]opportunity.Opportunity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []opportunity.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOpportunity(row rowScanner) (*opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	err := row.Scan(
		&o.ID,
		&o.Type,
		&o.Title,
		&o.Domain,
		&o.StudentsRequired,
		&o.Duration,
		&o.Deadline,
		&o.GoogleFormLink,
		&o.Description,
		&o.Requirements,
		&o.Professors,
		&o.Students,
		&o.CreatedBy,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
