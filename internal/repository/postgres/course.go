package postgres

import (
	"context"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

func (s *Storage) GetCoursesForProfessor(ctx context.Context, professorID int) ([]domain.Course, error) {
	const query = `
		SELECT id, professor_id, name
        FROM courses
        WHERE professor_id = $1;
	`

	rows, err := s.pool.Query(ctx, query, professorID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		err := rows.Scan(
			&c.ID,
			&c.ProfessorID,
			&c.Name,
		)
		if err != nil {
			return nil, err
		}

		courses = append(courses, c)
	}

	return courses, rows.Err()
}
