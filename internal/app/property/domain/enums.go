package domain

// Status is the lifecycle status of a listing.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusSold     Status = "sold"
	StatusRented   Status = "rented"
	StatusInactive Status = "inactive"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusDraft, StatusActive, StatusPending, StatusSold, StatusRented, StatusInactive}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// PropertyType classifies the building or plot.
type PropertyType string

const (
	TypeApartment  PropertyType = "apartment"
	TypeHouse      PropertyType = "house"
	TypeVilla      PropertyType = "villa"
	TypeCondo      PropertyType = "condo"
	TypeTownhouse  PropertyType = "townhouse"
	TypeLand       PropertyType = "land"
	TypeCommercial PropertyType = "commercial"
	TypeOffice     PropertyType = "office"
)

var PropertyTypes = []PropertyType{
	TypeApartment, TypeHouse, TypeVilla, TypeCondo, TypeTownhouse, TypeLand, TypeCommercial, TypeOffice,
}

func (t PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ListingType is how the property is offered.
type ListingType string

const (
	ListingSale  ListingType = "sale"
	ListingRent  ListingType = "rent"
	ListingLease ListingType = "lease"
)

func (l ListingType) Valid() bool {
	return l == ListingSale || l == ListingRent || l == ListingLease
}

// PriceUnit says what the price amount covers.
type PriceUnit string

const (
	PriceTotal    PriceUnit = "total"
	PricePerMonth PriceUnit = "per_month"
	PricePerSqft  PriceUnit = "per_sqft"
)

func (u PriceUnit) Valid() bool {
	return u == PriceTotal || u == PricePerMonth || u == PricePerSqft
}

// AreaUnit is the unit of Area.Value.
type AreaUnit string

const (
	AreaSqft AreaUnit = "sqft"
	AreaSqm  AreaUnit = "sqm"
	AreaAcre AreaUnit = "acre"
)

func (u AreaUnit) Valid() bool {
	return u == AreaSqft || u == AreaSqm || u == AreaAcre
}

// Furnishing describes the furniture included.
type Furnishing string

const (
	Unfurnished   Furnishing = "unfurnished"
	SemiFurnished Furnishing = "semi_furnished"
	Furnished     Furnishing = "furnished"
)

func (f Furnishing) Valid() bool {
	return f == Unfurnished || f == SemiFurnished || f == Furnished
}
