package handler_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/handler"
	"github.com/likhitatulimilli23/HCI/internal/service"
	"github.com/likhitatulimilli23/HCI/internal/utils"
)

// stubStore serves canned catalog data so the handlers can be exercised
// over real HTTP plumbing without a database.
type stubStore struct {
	professor domain.Professor
	courses   []domain.Course
	ratings   []domain.Rating
	tags      []domain.Tag

	lastInserted *domain.NewRatingRequest
	lastDate     string
}

func (s *stubStore) GetProfessorByID(_ context.Context, id int) (*domain.Professor, error) {
	if id != s.professor.ID {
		return nil, utils.ErrProfessorNotFound
	}
	prof := s.professor
	return &prof, nil
}

func (s *stubStore) ListProfessors(_ context.Context, search string) ([]domain.ProfessorSummary, error) {
	if !strings.Contains(strings.ToLower(s.professor.Name), strings.ToLower(search)) {
		return nil, nil
	}

	sum := 0
	for _, r := range s.ratings {
		sum += r.Rating
	}
	summary := domain.ProfessorSummary{Professor: s.professor, NumberOfRatings: len(s.ratings)}
	if len(s.ratings) > 0 {
		summary.AverageRating = float64(sum) / float64(len(s.ratings))
	}
	return []domain.ProfessorSummary{summary}, nil
}

func (s *stubStore) GetCoursesForProfessor(_ context.Context, _ int) ([]domain.Course, error) {
	return s.courses, nil
}

func (s *stubStore) GetRatingValues(_ context.Context, sc domain.Scope) ([]int, error) {
	var values []int
	for _, r := range s.ratings {
		if r.ProfessorID != sc.ProfessorID {
			continue
		}
		if sc.CourseID != nil && (r.CourseID == nil || *r.CourseID != *sc.CourseID) {
			continue
		}
		values = append(values, r.Rating)
	}
	return values, nil
}

func (s *stubStore) GetRatingsInScope(_ context.Context, sc domain.Scope) ([]domain.Rating, error) {
	var ratings []domain.Rating
	for _, r := range s.ratings {
		if r.ProfessorID == sc.ProfessorID {
			ratings = append(ratings, r)
		}
	}
	return ratings, nil
}

func (s *stubStore) InsertRating(_ context.Context, req *domain.NewRatingRequest, date string) (int, error) {
	s.lastInserted = req
	s.lastDate = date
	return 7, nil
}

func (s *stubStore) GetTagCounts(_ context.Context, sc domain.Scope) ([]domain.TagCount, error) {
	var counts []domain.TagCount
	for _, t := range s.tags {
		if t.ProfessorID != sc.ProfessorID {
			continue
		}
		if sc.CourseID == nil && t.CourseID != nil {
			continue
		}
		if sc.CourseID != nil && (t.CourseID == nil || *t.CourseID != *sc.CourseID) {
			continue
		}
		counts = append(counts, domain.TagCount{Tag: t.Tag, Count: t.Count})
	}
	return counts, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func courseRef(id int) *int { return &id }

func newTestServer(store *stubStore) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	svc := service.New(store)
	handler.SetupProfessorRoutes(e, svc)
	handler.SetupRatingRoutes(e, svc)
	return e
}

func newStubCatalog() *stubStore {
	return &stubStore{
		professor: domain.Professor{ID: 1, Name: "John Doe", Department: "Computer Science", University: "MIT"},
		courses: []domain.Course{
			{ID: 1, ProfessorID: 1, Name: "Introduction to Programming"},
			{ID: 2, ProfessorID: 1, Name: "Data Structures"},
		},
		ratings: []domain.Rating{
			{ID: 1, ProfessorID: 1, CourseID: courseRef(1), Rating: 5},
			{ID: 2, ProfessorID: 1, CourseID: courseRef(2), Rating: 4},
		},
		tags: []domain.Tag{
			{ID: 1, ProfessorID: 1, Tag: "Helpful", Count: 10},
			{ID: 2, ProfessorID: 1, Tag: "Clear explanations", Count: 8},
		},
	}
}
