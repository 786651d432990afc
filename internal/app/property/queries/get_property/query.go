package get_property

import (
	"context"
	"log"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Request contains the property ID to retrieve.
type Request struct {
	PropertyID string
	// Caller is nil for anonymous requests.
	Caller *auth.Principal
	// CountView increments the view counter for non-owners.
	CountView bool
}

// Query handles the get property query use case.
type Query struct {
	readModel contracts.ReadModel
	repo      contracts.PropertyRepository
}

// NewQuery creates a new get property query.
func NewQuery(readModel contracts.ReadModel, repo contracts.PropertyRepository) *Query {
	return &Query{
		readModel: readModel,
		repo:      repo,
	}
}

// Execute returns the listing. Listings that are not active are visible
// to their owner and admins only; everyone else gets not found.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PropertyDTO, error) {
	dto, err := q.readModel.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	owner := req.Caller != nil && req.Caller.Owns(dto.Agent.ID)
	if !owner && dto.Status != string(domain.StatusActive) {
		return nil, domain.ErrPropertyNotFound
	}

	if req.CountView && !owner {
		if err := q.repo.IncrementCounter(ctx, dto.ID, contracts.CounterViews); err != nil {
			log.Printf("failed to count view of property %s: %v", dto.ID, err)
		} else {
			dto.Views++
		}
	}

	return dto, nil
}
