package aisearch

import (
	"context"

	"github.com/carevo/platform/internal/ai/studentsearch"
	"github.com/carevo/platform/placement/user"
)

// Engine is the natural-language filter over student profiles. Satisfied by
// studentsearch.Searcher.
type Engine interface {
	Filter(ctx context.Context, query string, students []studentsearch.StudentProfile) (*studentsearch.FilterResult, error)
}

// StudentLister supplies the profiles to search over. Satisfied by
// user.Repository.
type StudentLister interface {
	ListStudents(ctx context.Context) ([]user.User, error)
}
