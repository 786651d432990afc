package m_property

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the properties table.
type Data struct {
	PropertyID    string              `spanner:"property_id"`
	AgentID       string              `spanner:"agent_id"`
	Title         string              `spanner:"title"`
	Description   string              `spanner:"description"`
	PropertyType  string              `spanner:"property_type"`
	ListingType   string              `spanner:"listing_type"`
	Status        string              `spanner:"status"`
	PriceAmount   big.Rat             `spanner:"price_amount"`
	PriceCurrency string              `spanner:"price_currency"`
	PriceUnit     string              `spanner:"price_unit"`
	Street        spanner.NullString  `spanner:"street"`
	City          string              `spanner:"city"`
	State         string              `spanner:"state"`
	ZipCode       spanner.NullString  `spanner:"zip_code"`
	Country       string              `spanner:"country"`
	Latitude      spanner.NullFloat64 `spanner:"latitude"`
	Longitude     spanner.NullFloat64 `spanner:"longitude"`
	Bedrooms      int64               `spanner:"bedrooms"`
	Bathrooms     int64               `spanner:"bathrooms"`
	AreaValue     float64             `spanner:"area_value"`
	AreaUnit      string              `spanner:"area_unit"`
	Floors        int64               `spanner:"floors"`
	Parking       int64               `spanner:"parking"`
	Furnishing    string              `spanner:"furnishing"`
	YearBuilt     spanner.NullInt64   `spanner:"year_built"`
	Amenities     []string            `spanner:"amenities"`
	Views         int64               `spanner:"views"`
	Impressions   int64               `spanner:"impressions"`
	Clicks        int64               `spanner:"clicks"`
	Featured      bool                `spanner:"featured"`
	Verified      bool                `spanner:"verified"`
	CreatedAt     time.Time           `spanner:"created_at"`
	UpdatedAt     time.Time           `spanner:"updated_at"`
}
