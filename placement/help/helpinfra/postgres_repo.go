package helpinfra

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/help"
)

type PostgresHelpRepository struct {
	db *sqlx.DB
}

func NewPostgresHelpRepository(db *sqlx.DB) help.Repository {
	return &PostgresHelpRepository{db: db}
}

// Create creates a new help report
func (r *PostgresHelpRepository) Create(ctx context.Context, report *help.Report) error {
	query := `
		INSERT INTO help_reports (
			id, user_id, user_email, user_name, user_type,
			title, description, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		report.ID,
		report.UserID,
		report.UserEmail,
		report.UserName,
		report.UserType,
		report.Title,
		report.Description,
		report.Status,
		report.CreatedAt,
	)

	return err
}

// ListByUser retrieves the user's reports, newest first
func (r *PostgresHelpRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]help.Report, error) {
	query := `
		SELECT id, user_id, user_email, user_name, user_type,
			title, description, status, created_at
		FROM help_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

// ListAll retrieves every report, newest first
func (r *PostgresHelpRepository) ListAll(ctx context.Context) ([]help.Report, error) {
	query := `
		SELECT id, user_id, user_email, user_name, user_type,
			title, description, status, created_at
		FROM help_reports
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *PostgresHelpRepository) list(ctx context.Context, query string, args ...any) ([]help.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []help.Report
	for rows.Next() {
		var report help.Report
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.UserEmail,
			&report.UserName,
			&report.UserType,
			&report.Title,
			&report.Description,
			&report.Status,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
