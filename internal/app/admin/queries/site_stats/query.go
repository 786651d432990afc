package site_stats

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/admin/contracts"
	"github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Query returns the site-wide statistics.
type Query struct {
	readModel contracts.StatsReadModel
}

// NewQuery creates a new site stats query.
func NewQuery(readModel contracts.StatsReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, caller auth.Principal) (domain.SiteStats, error) {
	if !caller.IsAdmin() {
		return domain.SiteStats{}, domain.ErrAdminOnly
	}
	counts, err := q.readModel.Counts(ctx)
	if err != nil {
		return domain.SiteStats{}, err
	}
	return domain.BuildSiteStats(counts), nil
}
