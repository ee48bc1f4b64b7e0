package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/likhitatulimilli23/HCI/internal/domain"
	"github.com/likhitatulimilli23/HCI/internal/utils"
)

func (s *Storage) GetProfessorByID(ctx context.Context, id int) (*domain.Professor, error) {
	const query = `
		SELECT id, name, department, university
        FROM professors WHERE id = $1;
	`

	var p domain.Professor
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Department,
		&p.University,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrProfessorNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// ListProfessors returns every professor whose name contains the search
// term (case-insensitive), each with the average and count over all of
// their ratings. Row order follows the grouping, it is not sorted.
func (s *Storage) ListProfessors(ctx context.Context, search string) ([]domain.ProfessorSummary, error) {
	const query = `
		SELECT
            p.id, p.name, p.department, p.university,
            COALESCE(AVG(r.rating), 0) AS average_rating,
            COUNT(DISTINCT r.id) AS number_of_ratings
        FROM professors p
        LEFT JOIN ratings r ON p.id = r.professor_id
        WHERE p.name ILIKE '%' || $1 || '%'
        GROUP BY p.id;
	`

	rows, err := s.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var professors []domain.ProfessorSummary
	for rows.Next() {
		var p domain.ProfessorSummary
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Department,
			&p.University,
			&p.AverageRating,
			&p.NumberOfRatings,
		)
		if err != nil {
			return nil, err
		}

		professors = append(professors, p)
	}

	return professors, rows.Err()
}
