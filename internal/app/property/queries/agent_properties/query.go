package agent_properties

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/queries/list_properties"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

type Request struct {
	AgentID string
	Sort    string
	Order   string
	Page    string
	Limit   string
}

// Query lists the active listings of one agent.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new agent properties query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, req *Request) (*list_properties.Result, error) {
	page, err := paging.Parse(req.Page, req.Limit, list_properties.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	orders, err := list_properties.Sorting.Resolve(req.Sort, req.Order)
	if err != nil {
		return nil, err
	}

	props, total, err := q.readModel.ListProperties(ctx, contracts.ListQuery{
		Conditions: []query.Condition{
			query.Eq(m_property.AgentID, req.AgentID),
			query.Eq(m_property.Status, string(domain.StatusActive)),
		},
		Orders: orders,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	return &list_properties.Result{
		Properties: props,
		Meta:       page.Meta(len(props), total),
	}, nil
}
