// Package service holds the rating aggregation and profile composition
// rules. It reads raw rows through the Store interface and derives the
// values clients render; nothing is cached, every request recomputes
// from current store contents.
package service

import (
	"context"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// Store is the persistence surface the service depends on. It executes
// parameterized queries and nothing else; *postgres.Storage implements
// it in production, tests substitute an in-memory fake.
type Store interface {
	GetProfessorByID(ctx context.Context, id int) (*domain.Professor, error)
	ListProfessors(ctx context.Context, search string) ([]domain.ProfessorSummary, error)
	GetCoursesForProfessor(ctx context.Context, professorID int) ([]domain.Course, error)
	GetRatingValues(ctx context.Context, sc domain.Scope) ([]int, error)
	GetRatingsInScope(ctx context.Context, sc domain.Scope) ([]domain.Rating, error)
	InsertRating(ctx context.Context, req *domain.NewRatingRequest, date string) (int, error)
	GetTagCounts(ctx context.Context, sc domain.Scope) ([]domain.TagCount, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}
