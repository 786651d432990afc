package list_contacts

import (
	"context"
	"strings"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// DefaultPageSize is the page size when the client sends none.
const DefaultPageSize = 10

// Filter holds the raw filter parameters. Unknown values are ignored.
type Filter struct {
	Status   string
	Category string
	Priority string
}

type Request struct {
	Caller auth.Principal
	Filter Filter
	Page   string
	Limit  string
}

type Result struct {
	Contacts []*contracts.ContactDTO `json:"contacts"`
	Meta     paging.Meta             `json:"meta"`
}

// BuildFilter renders the exact-match filters that carry a known value.
func BuildFilter(f Filter) []query.Condition {
	conds := make([]query.Condition, 0, 3)
	if s := domain.Status(strings.TrimSpace(f.Status)); s.Valid() {
		conds = append(conds, query.Eq(m_contact.Status, string(s)))
	}
	if c := domain.Category(strings.TrimSpace(f.Category)); c.Valid() {
		conds = append(conds, query.Eq(m_contact.Category, string(c)))
	}
	if p := domain.Priority(strings.TrimSpace(f.Priority)); p.Valid() {
		conds = append(conds, query.Eq(m_contact.Priority, string(p)))
	}
	return conds
}

// Query lists submissions for admins, newest first.
type Query struct {
	readModel contracts.ReadModel
}

func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	if !req.Caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	page, err := paging.Parse(req.Page, req.Limit, DefaultPageSize)
	if err != nil {
		return nil, err
	}

	contacts, total, err := q.readModel.ListContacts(ctx, contracts.ListQuery{
		Conditions: BuildFilter(req.Filter),
		Page:       page,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Contacts: contacts, Meta: page.Meta(len(contacts), total)}, nil
}
