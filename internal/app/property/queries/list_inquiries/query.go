package list_inquiries

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

// DefaultPageSize for inquiry listings.
const DefaultPageSize = 10

// Request contains the property and paging parameters.
type Request struct {
	PropertyID string
	Caller     auth.Principal
	Page       string
	Limit      string
}

// Result is one page of inquiries.
type Result struct {
	Inquiries []domain.Inquiry
	Meta      paging.Meta
}

// Query lists the inquiries of a listing for its owner or an admin.
type Query struct {
	repo      contracts.PropertyRepository
	inquiries contracts.InquiryRepository
}

// NewQuery creates a new list inquiries query.
func NewQuery(repo contracts.PropertyRepository, inquiries contracts.InquiryRepository) *Query {
	return &Query{repo: repo, inquiries: inquiries}
}

// Execute checks ownership before reading.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	page, err := paging.Parse(req.Page, req.Limit, DefaultPageSize)
	if err != nil {
		return nil, err
	}

	property, err := q.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !req.Caller.Owns(property.AgentID()) {
		return nil, domain.ErrNotOwner
	}

	items, total, err := q.inquiries.ListByProperty(ctx, req.PropertyID, page)
	if err != nil {
		return nil, err
	}
	return &Result{Inquiries: items, Meta: page.Meta(len(items), total)}, nil
}
