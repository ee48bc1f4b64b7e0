package service

import (
	"context"
	"sort"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// DefaultTagLimit caps how many tags a profile shows.
const DefaultTagLimit = 5

// TopTags groups the scoped rows by tag text, sums their counts and
// returns the texts of the heaviest groups, at most limit. Equal sums
// are broken by tag text ascending so the ranking is stable across runs
// and store backends. An empty scope yields an empty slice.
func TopTags(rows []domain.TagCount, limit int) []string {
	if limit <= 0 || len(rows) == 0 {
		return nil
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Tag] += row.Count
	}

	ranked := make([]string, 0, len(totals))
	for tag := range totals {
		ranked = append(ranked, tag)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// GetTopTags ranks the tags in scope from current store state.
func (s *Service) GetTopTags(ctx context.Context, sc domain.Scope, limit int) ([]string, error) {
	rows, err := s.store.GetTagCounts(ctx, sc)
	if err != nil {
		return nil, err
	}

	return TopTags(rows, limit), nil
}
