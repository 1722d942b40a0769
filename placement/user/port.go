package user

import (
	"context"

	"github.com/carevo/platform/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// ExistsByEmail checks whether an account already uses the email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)

	// Update persists the full profile of an existing user
	Update(ctx context.Context, u *User) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error

	// ListStudents retrieves all student accounts, newest first
	ListStudents(ctx context.Context) ([]User, error)
}

type ProjectRepository interface {
	// Create creates a new student project
	Create(ctx context.Context, p *StudentProject) error

	// GetByID retrieves a project owned by the user
	GetByID(ctx context.Context, id kernel.StudentProjectID, userID kernel.UserID) (*StudentProject, error)

	// ListByUser retrieves the user's projects, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]StudentProject, error)

	// Update persists changes to an existing project
	Update(ctx context.Context, p *StudentProject) error

	// Delete removes a project owned by the user
	Delete(ctx context.Context, id kernel.StudentProjectID, userID kernel.UserID) error

	// CountByUser counts the user's projects
	CountByUser(ctx context.Context, userID kernel.UserID) (int, error)
}

// ApplicationCounter reports how many opportunity applications a student has
// submitted. Implemented by the application domain.
type ApplicationCounter interface {
	CountByStudent(ctx context.Context, studentID kernel.UserID) (int, error)
}
