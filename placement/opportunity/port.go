package opportunity

import (
	"context"

	"github.com/carevo/platform/pkg/kernel"
)

type Repository interface {
	// Create creates a new opportunity
	Create(ctx context.Context, o *Opportunity) error

	// GetByID retrieves an opportunity by ID and type
	GetByID(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (*Opportunity, error)

	// ListByType retrieves all opportunities of a type, newest first
	ListByType(ctx context.Context, opType kernel.OpportunityType) ([]Opportunity, error)

	// ListActiveByType retrieves active opportunities of a type, newest first
	ListActiveByType(ctx context.Context, opType kernel.OpportunityType) ([]Opportunity, error)

	// Update persists changes to an existing opportunity
	Update(ctx context.Context, o *Opportunity) error

	// Delete removes an opportunity
	Delete(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) error
}

// ApplicationState is what the application domain reports back about an
// opportunity: how many applications it has, and whether a given student
// already applied.
type ApplicationState interface {
	CountByOpportunity(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (int, error)

	// StatusForStudent returns the student's application status for the
	// opportunity, or nil when the student has not applied.
	StatusForStudent(ctx context.Context, studentID kernel.UserID, id kernel.OpportunityID, opType kernel.OpportunityType) (*string, error)
}
