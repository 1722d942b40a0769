package userinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
)

type PostgresProjectRepository struct {
	db *sqlx.DB
}

func NewPostgresProjectRepository(db *sqlx.DB) user.ProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// Create creates a new student project
func (r *PostgresProjectRepository) Create(ctx context.Context, p *user.StudentProject) error {
	query := `
		INSERT INTO student_projects (
			id, user_id, title, github_link, website_link,
			tech_stack, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		p.ID,
		p.UserID,
		p.Title,
		p.GithubLink,
		p.WebsiteLink,
		p.TechStack,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

// GetByID retrieves a project owned by the user
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id kernel.StudentProjectID, userID kernel.UserID) (*user.StudentProject, error) {
	query := `
		SELECT id, user_id, title, github_link, website_link,
			tech_stack, created_at, updated_at
		FROM student_projects
		WHERE id = $1 AND user_id = $2
	`

	var p user.StudentProject
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.GithubLink,
		&p.WebsiteLink,
		&p.TechStack,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, user.ErrProjectNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser retrieves the user's projects, newest first
func (r *PostgresProjectRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]user.StudentProject, error) {
	query := `
		SELECT id, user_id, title, github_link, website_link,
			tech_stack, created_at, updated_at
		FROM student_projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []user.StudentProject
	for rows.Next() {
		var p user.StudentProject
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.GithubLink,
			&p.WebsiteLink,
			&p.TechStack,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update persists changes to an existing project
func (r *PostgresProjectRepository) Update(ctx context.Context, p *user.StudentProject) error {
	query := `
		UPDATE student_projects
		SET
			title = $3,
			github_link = $4,
			website_link = $5,
			tech_stack = $6,
			updated_at = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		p.ID,
		p.UserID,
		p.Title,
		p.GithubLink,
		p.WebsiteLink,
		p.TechStack,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrProjectNotFound()
	}
	return nil
}

// Delete removes a project owned by the user
func (r *PostgresProjectRepository) Delete(ctx context.Context, id kernel.StudentProjectID, userID kernel.UserID) error {
	query := `DELETE FROM student_projects WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrProjectNotFound()
	}
	return nil
}

// CountByUser counts the user's projects
func (r *PostgresProjectRepository) CountByUser(ctx context.Context, userID kernel.UserID) (int, error) {
	query := `SELECT COUNT(*) FROM student_projects WHERE user_id = $1`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}
