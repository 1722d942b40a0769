package userinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) user.Repository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `
	id, email, password_hash, name, user_type,
	field, year, cgpa, mobile, roll_no,
	resume_url, performance_doc_url, linkedin_profile, github_profile,
	skills, tech_stack, ai_tools,
	experiences, certifications, projects,
	onboarding_completed, created_at, updated_at
`

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17,
			$18, $19, $20,
			$21, $22, $23
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.UserType,
		u.Field,
		u.Year,
		u.CGPA,
		u.Mobile,
		u.RollNo,
		u.ResumeURL,
		u.PerformanceDocURL,
		u.LinkedinProfile,
		u.GithubProfile,
		u.Skills,
		u.TechStack,
		u.AITools,
		u.Experiences,
		u.Certifications,
		u.Projects,
		u.OnboardingCompleted,
		u.CreatedAt,
		u.UpdatedAt,
	)

	return err
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, user.ErrUserNotFound()
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves a user by normalized email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	row := r.db.QueryRowContext(ctx, query, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, user.ErrUserNotFound()
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ExistsByEmail checks whether an account already uses the email
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

// Update persists the full profile of an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET
			email = $2,
			name = $3,
			field = $4,
			year = $5,
			cgpa = $6,
			mobile = $7,
			roll_no = $8,
			resume_url = $9,
			performance_doc_url = $10,
			linkedin_profile = $11,
			github_profile = $12,
			skills = $13,
			tech_stack = $14,
			ai_tools = $15,
			experiences = $16,
			certifications = $17,
			projects = $18,
			onboarding_completed = $19,
			updated_at = $20
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		u.ID,
		u.Email,
		u.Name,
		u.Field,
		u.Year,
		u.CGPA,
		u.Mobile,
		u.RollNo,
		u.ResumeURL,
		u.PerformanceDocURL,
		u.LinkedinProfile,
		u.GithubProfile,
		u.Skills,
		u.TechStack,
		u.AITools,
		u.Experiences,
		u.Certifications,
		u.Projects,
		u.OnboardingCompleted,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}

// ListStudents retrieves all student accounts, newest first
func (r *PostgresUserRepository) ListStudents(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_type = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, kernel.UserTypeStudent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *u)
	}
	return students, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.UserType,
		&u.Field,
		&u.Year,
		&u.CGPA,
		&u.Mobile,
		&u.RollNo,
		&u.ResumeURL,
		&u.PerformanceDocURL,
		&u.LinkedinProfile,
		&u.GithubProfile,
		&u.Skills,
		&u.TechStack,
		&u.AITools,
		&u.Experiences,
		&u.Certifications,
		&u.Projects,
		&u.OnboardingCompleted,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
