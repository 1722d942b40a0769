package application

import (
	"context"

	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/opportunity"
	"github.com/carevo/platform/placement/user"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, a *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// GetByStudentAndOpportunity retrieves the student's application to an
	// opportunity, if any
	GetByStudentAndOpportunity(ctx context.Context, studentID kernel.UserID, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) (*Application, error)

	// ListByStudent retrieves the student's applications, newest first
	ListByStudent(ctx context.Context, studentID kernel.UserID) ([]Application, error)

	// List retrieves applications matching the filter, newest first
	List(ctx context.Context, filter ListFilter) ([]Application, error)

	// ListByOpportunity retrieves applications for one opportunity, newest first
	ListByOpportunity(ctx context.Context, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) ([]Application, error)

	// Update persists changes to an existing application
	Update(ctx context.Context, a *Application) error

	// Delete removes an application owned by the student
	Delete(ctx context.Context, id kernel.ApplicationID, studentID kernel.UserID) error

	// CountByStudent counts the student's applications
	CountByStudent(ctx context.Context, studentID kernel.UserID) (int, error)

	// CountByOpportunity counts applications for an opportunity
	CountByOpportunity(ctx context.Context, opportunityID kernel.OpportunityID, opType kernel.OpportunityType) (int, error)
}

// StudentReader resolves the profile snapshotted onto new applications.
// Satisfied by user.Repository.
type StudentReader interface {
	GetByID(ctx context.Context, id kernel.UserID) (*user.User, error)
}

// OpportunityReader checks that the target posting exists and supplies its
// title. Satisfied by opportunity.Repository.
type OpportunityReader interface {
	GetByID(ctx context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (*opportunity.Opportunity, error)
}
