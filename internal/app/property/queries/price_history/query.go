package price_history

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// MaxRecords bounds the history returned.
const MaxRecords = 50

// Request contains the property ID.
type Request struct {
	PropertyID string
	Caller     *auth.Principal
}

// Query returns the price changes of a listing, newest first.
type Query struct {
	repo    contracts.PropertyRepository
	history contracts.PriceHistoryRepository
}

// NewQuery creates a new price history query.
func NewQuery(repo contracts.PropertyRepository, history contracts.PriceHistoryRepository) *Query {
	return &Query{repo: repo, history: history}
}

// Execute applies the same visibility rule as reading the listing.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.PriceHistoryRecord, error) {
	property, err := q.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	owner := req.Caller != nil && req.Caller.Owns(property.AgentID())
	if !owner && !property.IsPublic() {
		return nil, domain.ErrPropertyNotFound
	}

	records, err := q.history.ListByProperty(ctx, req.PropertyID, MaxRecords)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []contracts.PriceHistoryRecord{}
	}
	return records, nil
}
