package postgres

import (
	"context"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// GetRatingValues returns the raw rating values in scope. Aggregation
// (mean, count, buckets) happens in the service layer.
func (s *Storage) GetRatingValues(ctx context.Context, sc domain.Scope) ([]int, error) {
	where, args := ratingScope(sc, "")
	query := `SELECT rating FROM ratings WHERE ` + where + `;`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var values []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, rows.Err()
}

// GetRatingsInScope returns the unaggregated rating rows with the
// course name joined in.
func (s *Storage) GetRatingsInScope(ctx context.Context, sc domain.Scope) ([]domain.Rating, error) {
	where, args := ratingScope(sc, "r.")
	query := `
		SELECT r.id, r.professor_id, r.course_id, r.user_id, r.rating,
            r.review, r.course_type, r.grade, r.email, r.date,
            c.name AS course_name
        FROM ratings r
        LEFT JOIN courses c ON r.course_id = c.id
        WHERE ` + where + `;`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var ratings []domain.Rating
	for rows.Next() {
		var r domain.Rating
		err := rows.Scan(
			&r.ID,
			&r.ProfessorID,
			&r.CourseID,
			&r.UserID,
			&r.Rating,
			&r.Review,
			&r.CourseType,
			&r.Grade,
			&r.Email,
			&r.Date,
			&r.CourseName,
		)
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, r)
	}

	return ratings, rows.Err()
}

// InsertRating appends one rating row and returns its new id. Nothing
// beyond the column types is checked here; referential integrity is the
// schema's job.
func (s *Storage) InsertRating(ctx context.Context, req *domain.NewRatingRequest, date string) (int, error) {
	const query = `
        INSERT INTO ratings (professor_id, course_id, user_id, rating, review, course_type, grade, email, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id;
    `

	var id int
	err := s.pool.QueryRow(ctx, query,
		req.ProfessorID, req.CourseID, req.UserID, req.Rating,
		req.Review, req.CourseType, req.Grade, req.Email, date,
	).Scan(&id)

	return id, err
}
