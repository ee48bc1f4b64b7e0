package service_test

import (
	"context"
	"testing"

	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/service"
	"github.com/likhitatulimilli23/HCI/internal/utils"
	"github.com/stretchr/testify/require"
)

func newCatalogStore() *fakeStore {
	return &fakeStore{
		professors: []domain.Professor{
			{ID: 1, Name: "John Doe", Department: "Computer Science", University: "MIT"},
			{ID: 2, Name: "Jane Smith", Department: "Physics", University: "Harvard"},
		},
		courses: []domain.Course{
			{ID: 1, ProfessorID: 1, Name: "Introduction to Programming"},
			{ID: 2, ProfessorID: 1, Name: "Data Structures"},
			{ID: 3, ProfessorID: 2, Name: "Quantum Mechanics"},
		},
		ratings: []domain.Rating{
			{ID: 1, ProfessorID: 1, CourseID: intRef(1), Rating: 5},
			{ID: 2, ProfessorID: 1, CourseID: intRef(2), Rating: 4},
		},
		tags: []domain.Tag{
			{ID: 1, ProfessorID: 1, CourseID: nil, Tag: "Helpful", Count: 10},
			{ID: 2, ProfessorID: 1, CourseID: nil, Tag: "Clear explanations", Count: 8},
			{ID: 3, ProfessorID: 1, CourseID: intRef(1), Tag: "Engaging", Count: 6},
		},
		nextRatingID: 2,
	}
}

func TestGetProfessorDetail(t *testing.T) {
	svc := service.New(newCatalogStore())
	ctx := context.Background()

	t.Run("composes stats, courses and tags", func(t *testing.T) {
		detail, err := svc.GetProfessorDetail(ctx, domain.ProfessorScope(1))
		require.NoError(t, err)

		require.Equal(t, "John Doe", detail.Name)
		require.Equal(t, "Computer Science", detail.Department)
		require.Equal(t, "MIT", detail.University)
		require.Equal(t, "4.5", detail.AverageRating)
		require.Equal(t, 2, detail.NumberOfRatings)
		require.Len(t, detail.Courses, 2)
		require.Equal(t, []string{"Helpful", "Clear explanations"}, detail.TopTags)
	})

	t.Run("course filter narrows stats and tags but not the course list", func(t *testing.T) {
		detail, err := svc.GetProfessorDetail(ctx, domain.CourseScope(1, 1))
		require.NoError(t, err)

		require.Equal(t, "5.0", detail.AverageRating)
		require.Equal(t, 1, detail.NumberOfRatings)
		require.Equal(t, []string{"Engaging"}, detail.TopTags)
		// The profile always lists every course the professor teaches.
		require.Len(t, detail.Courses, 2)
	})

	t.Run("professor without ratings shows 0.0, never NaN", func(t *testing.T) {
		detail, err := svc.GetProfessorDetail(ctx, domain.ProfessorScope(2))
		require.NoError(t, err)

		require.Equal(t, "0.0", detail.AverageRating)
		require.Equal(t, 0, detail.NumberOfRatings)
		require.Empty(t, detail.TopTags)
	})

	t.Run("unknown professor is not found, not an empty record", func(t *testing.T) {
		detail, err := svc.GetProfessorDetail(ctx, domain.ProfessorScope(42))
		require.ErrorIs(t, err, utils.ErrProfessorNotFound)
		require.Nil(t, detail)
	})
}

func TestListProfessors(t *testing.T) {
	svc := service.New(newCatalogStore())
	ctx := context.Background()

	t.Run("empty search matches everyone", func(t *testing.T) {
		professors, err := svc.ListProfessors(ctx, "")
		require.NoError(t, err)
		require.Len(t, professors, 2)
	})

	t.Run("search is a case-insensitive substring match", func(t *testing.T) {
		professors, err := svc.ListProfessors(ctx, "JOHN")
		require.NoError(t, err)
		require.Len(t, professors, 1)
		require.Equal(t, "John Doe", professors[0].Name)
		require.InDelta(t, 4.5, professors[0].AverageRating, 1e-9)
		require.Equal(t, 2, professors[0].NumberOfRatings)
	})
}
