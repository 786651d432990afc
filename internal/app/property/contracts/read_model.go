package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// PropertyDTO is the client representation of a listing.
type PropertyDTO struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Type           string            `json:"type"`
	ListingType    string            `json:"listingType"`
	Status         string            `json:"status"`
	Price          PriceDTO          `json:"price"`
	Address        AddressDTO        `json:"address"`
	Specifications SpecificationsDTO `json:"specifications"`
	Amenities      []string          `json:"amenities"`
	Images         []ImageDTO        `json:"images"`
	Agent          AgentSummary      `json:"agent"`
	Views          int64             `json:"views"`
	Impressions    int64             `json:"impressions"`
	Clicks         int64             `json:"clicks"`
	Featured       bool              `json:"featured"`
	Verified       bool              `json:"verified"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type PriceDTO struct {
	Amount   *domain.Money `json:"amount"`
	Currency string        `json:"currency"`
	Unit     string        `json:"unit"`
}

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AddressDTO struct {
	Street      string          `json:"street,omitempty"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	ZipCode     string          `json:"zipCode,omitempty"`
	Country     string          `json:"country"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
}

type AreaDTO struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type SpecificationsDTO struct {
	Bedrooms   int64   `json:"bedrooms"`
	Bathrooms  int64   `json:"bathrooms"`
	Area       AreaDTO `json:"area"`
	Floors     int64   `json:"floors"`
	Parking    int64   `json:"parking"`
	Furnishing string  `json:"furnishing"`
	YearBuilt  *int64  `json:"yearBuilt,omitempty"`
}

type ImageDTO struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	PublicID  string `json:"publicId"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// AgentSummary is the owning agent as shown next to a listing.
type AgentSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

// ListQuery is a rendered search: predicate, ordering and page.
type ListQuery struct {
	Conditions []query.Condition
	Orders     []query.Order
	Page       paging.Page
}

// ReadModel defines the interface for property queries.
// Read models bypass the domain layer.
type ReadModel interface {
	// GetProperty returns one listing regardless of status.
	GetProperty(ctx context.Context, propertyID string) (*PropertyDTO, error)

	// ListProperties returns one page of listings and the total match count.
	ListProperties(ctx context.Context, q ListQuery) ([]*PropertyDTO, int64, error)
}

// DashboardReadModel reads the per-agent aggregates.
type DashboardReadModel interface {
	AgentDashboard(ctx context.Context, agentID string) (domain.Dashboard, error)
}
