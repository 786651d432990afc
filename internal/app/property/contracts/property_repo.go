package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
)

// Counter names an engagement counter column.
type Counter string

const (
	CounterViews       Counter = "views"
	CounterImpressions Counter = "impressions"
	CounterClicks      Counter = "clicks"
)

// PropertyRepository defines the interface for property persistence.
// Repositories return mutations, they don't apply them.
type PropertyRepository interface {
	// InsertMuts creates the property row and its image rows.
	InsertMuts(property *domain.Property) ([]*spanner.Mutation, error)

	// UpdateMuts writes dirty fields and, when images changed, the image rows.
	UpdateMuts(property *domain.Property) ([]*spanner.Mutation, error)

	// DeleteMut removes the property; child rows cascade.
	DeleteMut(propertyID string) *spanner.Mutation

	// GetByID loads the aggregate with its images.
	GetByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// IncrementCounter adds one to a counter without loading the aggregate.
	IncrementCounter(ctx context.Context, propertyID string, counter Counter) error
}
