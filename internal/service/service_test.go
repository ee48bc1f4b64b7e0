package service_test

import (
	"context"
	"strings"

	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/utils"
)

// fakeStore keeps the four relations in memory and mirrors the scope
// semantics of the real store: the course filter is optional for
// ratings and strict either/or for tags.
type fakeStore struct {
	professors []domain.Professor
	courses    []domain.Course
	ratings    []domain.Rating
	tags       []domain.Tag

	nextRatingID int
}

func (f *fakeStore) GetProfessorByID(_ context.Context, id int) (*domain.Professor, error) {
	for _, p := range f.professors {
		if p.ID == id {
			prof := p
			return &prof, nil
		}
	}
	return nil, utils.ErrProfessorNotFound
}

func (f *fakeStore) ListProfessors(_ context.Context, search string) ([]domain.ProfessorSummary, error) {
	var summaries []domain.ProfessorSummary
	for _, p := range f.professors {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}

		sum, count := 0, 0
		for _, r := range f.ratings {
			if r.ProfessorID == p.ID {
				sum += r.Rating
				count++
			}
		}

		summary := domain.ProfessorSummary{Professor: p, NumberOfRatings: count}
		if count > 0 {
			summary.AverageRating = float64(sum) / float64(count)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (f *fakeStore) GetCoursesForProfessor(_ context.Context, professorID int) ([]domain.Course, error) {
	var courses []domain.Course
	for _, c := range f.courses {
		if c.ProfessorID == professorID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func inRatingScope(r domain.Rating, sc domain.Scope) bool {
	if r.ProfessorID != sc.ProfessorID {
		return false
	}
	if sc.CourseID != nil {
		return r.CourseID != nil && *r.CourseID == *sc.CourseID
	}
	return true
}

func (f *fakeStore) GetRatingValues(_ context.Context, sc domain.Scope) ([]int, error) {
	var values []int
	for _, r := range f.ratings {
		if inRatingScope(r, sc) {
			values = append(values, r.Rating)
		}
	}
	return values, nil
}

func (f *fakeStore) GetRatingsInScope(_ context.Context, sc domain.Scope) ([]domain.Rating, error) {
	var ratings []domain.Rating
	for _, r := range f.ratings {
		if inRatingScope(r, sc) {
			ratings = append(ratings, r)
		}
	}
	return ratings, nil
}

func (f *fakeStore) InsertRating(_ context.Context, req *domain.NewRatingRequest, date string) (int, error) {
	f.nextRatingID++
	f.ratings = append(f.ratings, domain.Rating{
		ID:          f.nextRatingID,
		ProfessorID: req.ProfessorID,
		CourseID:    req.CourseID,
		UserID:      req.UserID,
		Rating:      req.Rating,
		Review:      req.Review,
		CourseType:  req.CourseType,
		Grade:       req.Grade,
		Email:       req.Email,
		Date:        date,
	})
	return f.nextRatingID, nil
}

func (f *fakeStore) GetTagCounts(_ context.Context, sc domain.Scope) ([]domain.TagCount, error) {
	var counts []domain.TagCount
	for _, t := range f.tags {
		if t.ProfessorID != sc.ProfessorID {
			continue
		}
		if sc.CourseID != nil {
			if t.CourseID == nil || *t.CourseID != *sc.CourseID {
				continue
			}
		} else if t.CourseID != nil {
			continue
		}
		counts = append(counts, domain.TagCount{Tag: t.Tag, Count: t.Count})
	}
	return counts, nil
}

func intRef(v int) *int { return &v }
