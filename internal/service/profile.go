package service

import (
	"context"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// ListProfessors returns every professor matching the search term with
// their all-courses average and rating count. An empty term matches
// everyone. Result order is the store's grouping order.
func (s *Service) ListProfessors(ctx context.Context, search string) ([]domain.ProfessorSummary, error) {
	return s.store.ListProfessors(ctx, search)
}

// GetProfessor fetches the bare professor record.
func (s *Service) GetProfessor(ctx context.Context, id int) (*domain.Professor, error) {
	return s.store.GetProfessorByID(ctx, id)
}

// GetCourses returns the professor's complete course list.
func (s *Service) GetCourses(ctx context.Context, professorID int) ([]domain.Course, error) {
	return s.store.GetCoursesForProfessor(ctx, professorID)
}

// GetRatings returns the unaggregated rating rows in scope.
func (s *Service) GetRatings(ctx context.Context, sc domain.Scope) ([]domain.Rating, error) {
	return s.store.GetRatingsInScope(ctx, sc)
}

// GetProfessorDetail composes the profile view: professor attributes,
// the full course list (never narrowed by the scope's course filter),
// scoped stats in one-decimal presentation and the top tags. Returns
// utils.ErrProfessorNotFound when the professor does not exist.
func (s *Service) GetProfessorDetail(ctx context.Context, sc domain.Scope) (*domain.ProfessorDetail, error) {
	professor, err := s.store.GetProfessorByID(ctx, sc.ProfessorID)
	if err != nil {
		return nil, err
	}

	courses, err := s.store.GetCoursesForProfessor(ctx, sc.ProfessorID)
	if err != nil {
		return nil, err
	}

	stats, err := s.GetStats(ctx, sc)
	if err != nil {
		return nil, err
	}

	topTags, err := s.GetTopTags(ctx, sc, DefaultTagLimit)
	if err != nil {
		return nil, err
	}

	return &domain.ProfessorDetail{
		Professor:       *professor,
		Courses:         courses,
		AverageRating:   FormatAverage(stats.AverageRating),
		NumberOfRatings: stats.NumberOfRatings,
		TopTags:         topTags,
	}, nil
}
