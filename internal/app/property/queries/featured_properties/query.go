package featured_properties

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// DefaultLimit is the number of featured listings returned.
const DefaultLimit = 6

// Query returns the newest active featured listings.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new featured properties query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute lists up to DefaultLimit listings.
func (q *Query) Execute(ctx context.Context) ([]*contracts.PropertyDTO, error) {
	page, err := paging.NewPage(1, DefaultLimit)
	if err != nil {
		return nil, err
	}

	props, _, err := q.readModel.ListProperties(ctx, contracts.ListQuery{
		Conditions: []query.Condition{
			query.Eq(m_property.Status, string(domain.StatusActive)),
			query.Eq(m_property.Featured, true),
		},
		Orders: []query.Order{{Column: m_property.CreatedAt, Direction: query.Desc}},
		Page:   page,
	})
	return props, err
}
