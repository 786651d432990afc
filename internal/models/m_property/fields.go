package m_property

// Field name constants for the properties table.
const (
	TableName = "properties"

	PropertyID    = "property_id"
	AgentID       = "agent_id"
	Title         = "title"
	Description   = "description"
	PropertyType  = "property_type"
	ListingType   = "listing_type"
	Status        = "status"
	PriceAmount   = "price_amount"
	PriceCurrency = "price_currency"
	PriceUnit     = "price_unit"
	Street        = "street"
	City          = "city"
	State         = "state"
	ZipCode       = "zip_code"
	Country       = "country"
	Latitude      = "latitude"
	Longitude     = "longitude"
	Bedrooms      = "bedrooms"
	Bathrooms     = "bathrooms"
	AreaValue     = "area_value"
	AreaUnit      = "area_unit"
	Floors        = "floors"
	Parking       = "parking"
	Furnishing    = "furnishing"
	YearBuilt     = "year_built"
	Amenities     = "amenities"
	Views         = "views"
	Impressions   = "impressions"
	Clicks        = "clicks"
	Featured      = "featured"
	Verified      = "verified"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)

// Columns lists every column in Data field order, for reads and queries.
var Columns = []string{
	PropertyID, AgentID, Title, Description, PropertyType, ListingType, Status,
	PriceAmount, PriceCurrency, PriceUnit,
	Street, City, State, ZipCode, Country, Latitude, Longitude,
	Bedrooms, Bathrooms, AreaValue, AreaUnit, Floors, Parking, Furnishing, YearBuilt,
	Amenities, Views, Impressions, Clicks, Featured, Verified, CreatedAt, UpdatedAt,
}
