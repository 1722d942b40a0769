package help

import (
	"context"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/user"
)

type Repository interface {
	// Create creates a new help report
	Create(ctx context.Context, r *Report) error

	// ListByUser retrieves the user's reports, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]Report, error)

	// ListAll retrieves every report, newest first
	ListAll(ctx context.Context) ([]Report, error)
}

// UserReader resolves the reporter snapshot at filing time. Satisfied by
// user.Repository.
type UserReader interface {
	GetByID(ctx context.Context, id kernel.UserID) (*user.User, error)
}
