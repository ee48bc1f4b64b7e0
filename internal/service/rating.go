package service

import (
	"context"
	"time"

	"github.com/likhitatulimilli23/HCI/internal/domain"
)

// SubmitRating appends one rating row and returns its new id. The
// submission date is stamped here, in UTC RFC 3339; whatever date the
// client sent is ignored. Range and required-field checks happen at the
// HTTP layer, referential integrity is left to the store's foreign
// keys.
func (s *Service) SubmitRating(ctx context.Context, req *domain.NewRatingRequest) (int, error) {
	date := time.Now().UTC().Format(time.RFC3339)
	return s.store.InsertRating(ctx, req, date)
}
