package contact_stats

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Query returns inbox counters for admins.
type Query struct {
	readModel contracts.ReadModel
}

func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute fills in zero counts for every known status, category and
// priority so clients always see the full set of keys.
func (q *Query) Execute(ctx context.Context, caller auth.Principal) (*contracts.Stats, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	stats, err := q.readModel.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats.ByStatus = withZeros(stats.ByStatus, domain.Statuses)
	stats.ByCategory = withZeros(stats.ByCategory, domain.Categories)
	stats.ByPriority = withZeros(stats.ByPriority, domain.Priorities)
	return stats, nil
}

func withZeros[T ~string](counts map[string]int64, keys []T) map[string]int64 {
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[string(k)] = counts[string(k)]
	}
	return out
}
