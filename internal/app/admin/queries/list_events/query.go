package list_events

import (
	"context"
	"strings"

	"github.com/light-bringer/estate-service/internal/app/admin/contracts"
	"github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/models/m_outbox"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// DefaultPageSize is the page size when the client sends none.
const DefaultPageSize = 50

// Request contains filtering parameters for listing events.
type Request struct {
	Caller      auth.Principal
	EventType   string // e.g. "property.created"
	AggregateID string
	Status      string // "pending", "processing", "completed" or "failed"
	Page        string
	Limit       string
}

type Result struct {
	Events []*contracts.EventDTO `json:"events"`
	Meta   paging.Meta           `json:"meta"`
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a page of events with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	if !req.Caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	page, err := paging.Parse(req.Page, req.Limit, DefaultPageSize)
	if err != nil {
		return nil, err
	}

	events, total, err := q.readModel.ListEvents(ctx, contracts.EventsQuery{
		Conditions: BuildFilter(req),
		Page:       page,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Events: events, Meta: page.Meta(len(events), total)}, nil
}

// BuildFilter renders the exact-match filters that are set.
func BuildFilter(req *Request) []query.Condition {
	var conds []query.Condition
	if v := strings.TrimSpace(req.EventType); v != "" {
		conds = append(conds, query.Eq(m_outbox.EventType, v))
	}
	if v := strings.TrimSpace(req.AggregateID); v != "" {
		conds = append(conds, query.Eq(m_outbox.AggregateID, v))
	}
	if v := strings.TrimSpace(req.Status); v != "" {
		conds = append(conds, query.Eq(m_outbox.Status, v))
	}
	return conds
}
