package postgres

import (
	"context"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// GetTagCounts returns the (tag, count) pairs in scope, one per stored
// row. Summing per tag text and ranking happen in the service layer.
func (s *Storage) GetTagCounts(ctx context.Context, sc domain.Scope) ([]domain.TagCount, error) {
	where, args := tagScope(sc, "")
	query := `SELECT tag, count FROM tags WHERE ` + where + `;`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var tags []domain.TagCount
	for rows.Next() {
		var t domain.TagCount
		if err := rows.Scan(&t.Tag, &t.Count); err != nil {
			return nil, err
		}

		tags = append(tags, t)
	}

	return tags, rows.Err()
}
