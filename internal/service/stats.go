package service

import (
	"context"
	"strconv"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// Distribution counts ratings per value, keyed by the labels clients
// render: awful..awesome map to rating values 1..5.
type Distribution struct {
	Awesome int `json:"awesome"`
	Great   int `json:"great"`
	Good    int `json:"good"`
	OK      int `json:"ok"`
	Awful   int `json:"awful"`
}

func (d *Distribution) add(value int) {
	switch value {
	case 5:
		d.Awesome++
	case 4:
		d.Great++
	case 3:
		d.Good++
	case 2:
		d.OK++
	case 1:
		d.Awful++
	}
}

// Total is the number of bucketed ratings.
func (d Distribution) Total() int {
	return d.Awesome + d.Great + d.Good + d.OK + d.Awful
}

// Stats is the aggregate over the ratings of one scope. AverageRating
// is the raw mean; detail views format it with FormatAverage.
type Stats struct {
	AverageRating   float64
	NumberOfRatings int
	Distribution    Distribution
}

// ComputeStats derives the aggregate from raw rating values. An empty
// scope yields zeroes, never NaN. Values outside 1..5 are a
// data-integrity problem upstream: they still count toward the mean and
// the total but land in no bucket.
func ComputeStats(values []int) Stats {
	var stats Stats
	if len(values) == 0 {
		return stats
	}

	sum := 0
	for _, v := range values {
		sum += v
		stats.Distribution.add(v)
	}

	stats.NumberOfRatings = len(values)
	stats.AverageRating = float64(sum) / float64(len(values))
	return stats
}

// FormatAverage renders the mean with exactly one decimal digit, the
// presentation single-professor detail views use. The listing keeps the
// raw number; both come from the same computation.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// GetStats computes the aggregate for a scope from current store state.
func (s *Service) GetStats(ctx context.Context, sc domain.Scope) (Stats, error) {
	values, err := s.store.GetRatingValues(ctx, sc)
	if err != nil {
		return Stats{}, err
	}

	return ComputeStats(values), nil
}
