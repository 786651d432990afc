package list_agents

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

// Request contains search, sort and paging parameters.
type Request struct {
	Filter Filter
	Sort   string
	Order  string
	Page   string
	Limit  string
}

// Result is one page of agents.
type Result struct {
	Agents []*contracts.UserDTO `json:"agents"`
	Meta   paging.Meta          `json:"meta"`
}

// Query handles agent search.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list agents query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	page, err := paging.Parse(req.Page, req.Limit, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	orders, err := Sorting.Resolve(req.Sort, req.Order)
	if err != nil {
		return nil, err
	}

	agents, total, err := q.readModel.ListAgents(ctx, contracts.ListQuery{
		Conditions: BuildFilter(req.Filter),
		Orders:     orders,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Agents: agents,
		Meta:   page.Meta(len(agents), total),
	}, nil
}
