package domain

import "github.com/light-bringer/estate-service/internal/pkg/apperr"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the running mean of every rating an agent received.
type Rating struct {
	Average float64
	Count   int64
}

// Fold adds one rating value to the running mean. The count never decreases.
func (r Rating) Fold(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return r, apperr.Invalid("rating", "rating must be between 1 and 5")
	}

	count := r.Count + 1
	return Rating{
		Average: (r.Average*float64(r.Count) + float64(value)) / float64(count),
		Count:   count,
	}, nil
}
