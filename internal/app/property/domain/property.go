package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Field names for change tracking
const (
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldType           = "type"
	FieldListingType    = "listingType"
	FieldStatus         = "status"
	FieldPrice          = "price"
	FieldAddress        = "address"
	FieldSpecifications = "specifications"
	FieldAmenities      = "amenities"
	FieldImages         = "images"
	FieldFeatured       = "featured"
	FieldVerified       = "verified"
)

const (
	DefaultCurrency = "INR"
	DefaultCountry  = "India"

	maxTitleLen = 200
)

// Price is the asking price of a listing.
type Price struct {
	Amount   *Money
	Currency string
	Unit     PriceUnit
}

// Coordinates is an optional geo position.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Address locates a listing.
type Address struct {
	Street      string
	City        string
	State       string
	ZipCode     string
	Country     string
	Coordinates *Coordinates
}

// Area is a surface measurement.
type Area struct {
	Value float64
	Unit  AreaUnit
}

// Specifications describe the physical property.
type Specifications struct {
	Bedrooms   int64
	Bathrooms  int64
	Area       Area
	Floors     int64
	Parking    int64
	Furnishing Furnishing
	YearBuilt  *int64
}

// Details are the client-supplied fields of a new listing.
type Details struct {
	Title          string
	Description    string
	Type           PropertyType
	ListingType    ListingType
	Status         Status
	Price          Price
	Address        Address
	Specifications Specifications
	Amenities      []string
}

// Counters are the engagement counters, maintained with DML increments
// outside the aggregate.
type Counters struct {
	Views       int64
	Impressions int64
	Clicks      int64
}

// PriceChange is the old and new price of the last price update.
// Old is nil for the initial price.
type PriceChange struct {
	Old      *Money
	New      *Money
	Currency string
}

// Property is the aggregate root of a listing, its images included.
type Property struct {
	id          string
	agentID     string
	title       string
	description string
	propType    PropertyType
	listingType ListingType
	status      Status
	price       Price
	address     Address
	specs       Specifications
	amenities   []string
	images      []Image
	counters    Counters
	featured    bool
	verified    bool
	createdAt   time.Time
	updatedAt   time.Time

	removedImages []string
	priceChange   *PriceChange

	changes *ChangeTracker
	events  []DomainEvent
}

// NewProperty creates a new listing owned by agentID. Status defaults to draft.
func NewProperty(id, agentID string, d Details, now time.Time) (*Property, error) {
	if d.Status == "" {
		d.Status = StatusDraft
	}
	d.Price = normalizePrice(d.Price)
	d.Address = normalizeAddress(d.Address)
	d.Specifications = normalizeSpecs(d.Specifications)
	d.Amenities = NormalizeAmenities(d.Amenities)

	v := apperr.NewValidation()
	validateText(v, d.Title, d.Description)
	v.Check(d.Type.Valid(), "type", "invalid property type")
	v.Check(d.ListingType.Valid(), "listingType", "invalid listing type")
	v.Check(d.Status.Valid(), "status", "invalid status")
	validatePrice(v, d.Price)
	validateAddress(v, d.Address)
	validateSpecs(v, d.Specifications, now)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	p := &Property{
		id:          id,
		agentID:     agentID,
		title:       strings.TrimSpace(d.Title),
		description: strings.TrimSpace(d.Description),
		propType:    d.Type,
		listingType: d.ListingType,
		status:      d.Status,
		price:       d.Price,
		address:     d.Address,
		specs:       d.Specifications,
		amenities:   d.Amenities,
		createdAt:   now,
		updatedAt:   now,
		priceChange: &PriceChange{New: d.Price.Amount.Copy(), Currency: d.Price.Currency},
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.recordEvent(&PropertyCreatedEvent{
		PropertyID: p.id,
		AgentID:    p.agentID,
		Title:      p.title,
		Status:     string(p.status),
		Price:      p.price.Amount.String(),
		Currency:   p.price.Currency,
		City:       p.address.City,
		CreatedAt:  now,
	})

	return p, nil
}

// Snapshot is the persisted state used to reconstruct an aggregate.
type Snapshot struct {
	ID        string
	AgentID   string
	Details   Details
	Images    []Image
	Counters  Counters
	Featured  bool
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructProperty reconstitutes a Property from storage with a clean change set.
func ReconstructProperty(s Snapshot) *Property {
	images := make([]Image, len(s.Images))
	copy(images, s.Images)
	sort.SliceStable(images, func(i, j int) bool { return images[i].Position < images[j].Position })

	return &Property{
		id:          s.ID,
		agentID:     s.AgentID,
		title:       s.Details.Title,
		description: s.Details.Description,
		propType:    s.Details.Type,
		listingType: s.Details.ListingType,
		status:      s.Details.Status,
		price:       s.Details.Price,
		address:     s.Details.Address,
		specs:       s.Details.Specifications,
		amenities:   s.Details.Amenities,
		images:      images,
		counters:    s.Counters,
		featured:    s.Featured,
		verified:    s.Verified,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Property) ID() string                     { return p.id }
func (p *Property) AgentID() string                { return p.agentID }
func (p *Property) Title() string                  { return p.title }
func (p *Property) Description() string            { return p.description }
func (p *Property) Type() PropertyType             { return p.propType }
func (p *Property) ListingType() ListingType       { return p.listingType }
func (p *Property) Status() Status                 { return p.status }
func (p *Property) Price() Price                   { return p.price }
func (p *Property) Address() Address               { return p.address }
func (p *Property) Specifications() Specifications { return p.specs }
func (p *Property) Amenities() []string            { return append([]string(nil), p.amenities...) }
func (p *Property) Counters() Counters             { return p.counters }
func (p *Property) Featured() bool                 { return p.featured }
func (p *Property) Verified() bool                 { return p.verified }
func (p *Property) CreatedAt() time.Time           { return p.createdAt }
func (p *Property) UpdatedAt() time.Time           { return p.updatedAt }
func (p *Property) Changes() *ChangeTracker        { return p.changes }
func (p *Property) DomainEvents() []DomainEvent    { return p.events }
func (p *Property) PriceChange() *PriceChange      { return p.priceChange }
func (p *Property) RemovedImageIDs() []string      { return p.removedImages }

// IsPublic reports whether anonymous callers may see the listing.
func (p *Property) IsPublic() bool {
	return p.status == StatusActive
}

// SetStatus moves the listing to status. Every transition between known
// statuses is allowed; setting the current status is a no-op.
func (p *Property) SetStatus(status Status, now time.Time) error {
	if !status.Valid() {
		return apperr.Invalid("status", "invalid status")
	}
	if status == p.status {
		return nil
	}

	from := p.status
	p.status = status
	p.updatedAt = now
	p.changes.MarkDirty(FieldStatus)

	p.recordEvent(&PropertyStatusChangedEvent{
		PropertyID: p.id,
		From:       string(from),
		To:         string(status),
		ChangedAt:  now,
	})
	return nil
}

// Update is a typed partial update. Nil fields are left unchanged; nested
// values (price, address, specifications) replace the whole value.
type Update struct {
	Title          *string
	Description    *string
	Type           *PropertyType
	ListingType    *ListingType
	Status         *Status
	Price          *Price
	Address        *Address
	Specifications *Specifications
	Amenities      *[]string
	Featured       *bool
	Verified       *bool
}

// TouchesAdminFields reports whether u sets fields reserved to admins.
func (u Update) TouchesAdminFields() bool {
	return u.Featured != nil || u.Verified != nil
}

// ApplyUpdate validates every field of u, then applies them together.
// Nothing is changed when any field is invalid.
func (p *Property) ApplyUpdate(u Update, now time.Time) error {
	v := apperr.NewValidation()

	title, description := p.title, p.description
	if u.Title != nil {
		title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		description = strings.TrimSpace(*u.Description)
	}
	validateText(v, title, description)
	if u.Type != nil {
		v.Check(u.Type.Valid(), "type", "invalid property type")
	}
	if u.ListingType != nil {
		v.Check(u.ListingType.Valid(), "listingType", "invalid listing type")
	}
	if u.Status != nil {
		v.Check(u.Status.Valid(), "status", "invalid status")
	}

	var price Price
	if u.Price != nil {
		price = normalizePrice(*u.Price)
		validatePrice(v, price)
	}
	var address Address
	if u.Address != nil {
		address = normalizeAddress(*u.Address)
		validateAddress(v, address)
	}
	var specs Specifications
	if u.Specifications != nil {
		specs = normalizeSpecs(*u.Specifications)
		validateSpecs(v, specs, now)
	}
	if err := v.OrNil(); err != nil {
		return err
	}

	changed := make([]string, 0)
	mark := func(field string) {
		p.changes.MarkDirty(field)
		changed = append(changed, field)
	}

	if u.Title != nil && title != p.title {
		p.title = title
		mark(FieldTitle)
	}
	if u.Description != nil && description != p.description {
		p.description = description
		mark(FieldDescription)
	}
	if u.Type != nil && *u.Type != p.propType {
		p.propType = *u.Type
		mark(FieldType)
	}
	if u.ListingType != nil && *u.ListingType != p.listingType {
		p.listingType = *u.ListingType
		mark(FieldListingType)
	}
	if u.Price != nil {
		p.applyPrice(price, now)
		if p.changes.Dirty(FieldPrice) {
			changed = append(changed, FieldPrice)
		}
	}
	if u.Address != nil {
		p.address = address
		mark(FieldAddress)
	}
	if u.Specifications != nil {
		p.specs = specs
		mark(FieldSpecifications)
	}
	if u.Amenities != nil {
		p.amenities = NormalizeAmenities(*u.Amenities)
		mark(FieldAmenities)
	}
	if u.Featured != nil && *u.Featured != p.featured {
		p.featured = *u.Featured
		mark(FieldFeatured)
	}
	if u.Verified != nil && *u.Verified != p.verified {
		p.verified = *u.Verified
		mark(FieldVerified)
	}

	if len(changed) > 0 {
		p.updatedAt = now
		p.recordEvent(&PropertyUpdatedEvent{
			PropertyID: p.id,
			Fields:     changed,
			UpdatedAt:  now,
		})
	}

	if u.Status != nil {
		return p.SetStatus(*u.Status, now)
	}
	return nil
}

func (p *Property) applyPrice(price Price, now time.Time) {
	amountChanged := !price.Amount.Equals(p.price.Amount) || price.Currency != p.price.Currency
	if !amountChanged && price.Unit == p.price.Unit {
		return
	}

	old := p.price
	p.price = price
	p.changes.MarkDirty(FieldPrice)

	if amountChanged {
		p.priceChange = &PriceChange{Old: old.Amount.Copy(), New: price.Amount.Copy(), Currency: price.Currency}
		p.recordEvent(&PropertyPriceChangedEvent{
			PropertyID: p.id,
			OldPrice:   old.Amount.String(),
			NewPrice:   price.Amount.String(),
			Currency:   price.Currency,
			ChangedAt:  now,
		})
	}
}

// MarkDeleted records the deletion event. The repository removes the row.
func (p *Property) MarkDeleted(by string, now time.Time) {
	p.recordEvent(&PropertyDeletedEvent{
		PropertyID: p.id,
		DeletedBy:  by,
		DeletedAt:  now,
	})
}

func (p *Property) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Property) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// NormalizeAmenities trims, lower-cases and de-duplicates amenity names, keeping first-seen order.
func NormalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func normalizePrice(pr Price) Price {
	pr.Currency = strings.ToUpper(strings.TrimSpace(pr.Currency))
	if pr.Currency == "" {
		pr.Currency = DefaultCurrency
	}
	if pr.Unit == "" {
		pr.Unit = PriceTotal
	}
	return pr
}

func normalizeAddress(a Address) Address {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.ZipCode = strings.TrimSpace(a.ZipCode)
	a.Country = strings.TrimSpace(a.Country)
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a
}

func normalizeSpecs(s Specifications) Specifications {
	if s.Area.Unit == "" {
		s.Area.Unit = AreaSqft
	}
	if s.Furnishing == "" {
		s.Furnishing = Unfurnished
	}
	return s
}

func validateText(v *apperr.ValidationError, title, description string) {
	if v.Required("title", title) {
		v.MaxLen("title", title, maxTitleLen)
	}
	v.Required("description", description)
}

func validatePrice(v *apperr.ValidationError, pr Price) {
	if pr.Amount == nil {
		v.Add("price.amount", "price amount is required")
	} else {
		v.Check(!pr.Amount.IsNegative(), "price.amount", "price amount cannot be negative")
	}
	v.Check(len(pr.Currency) == 3, "price.currency", "currency must be a 3-letter code")
	v.Check(pr.Unit.Valid(), "price.unit", "invalid price unit")
}

func validateAddress(v *apperr.ValidationError, a Address) {
	v.Required("address.city", a.City)
	v.Required("address.state", a.State)
	if c := a.Coordinates; c != nil {
		v.Check(c.Lat >= -90 && c.Lat <= 90, "address.coordinates.lat", "latitude must be between -90 and 90")
		v.Check(c.Lng >= -180 && c.Lng <= 180, "address.coordinates.lng", "longitude must be between -180 and 180")
	}
}

func validateSpecs(v *apperr.ValidationError, s Specifications, now time.Time) {
	v.Check(s.Bedrooms >= 0, "specifications.bedrooms", "bedrooms cannot be negative")
	v.Check(s.Bathrooms >= 0, "specifications.bathrooms", "bathrooms cannot be negative")
	v.Check(s.Area.Value >= 0, "specifications.area.value", "area cannot be negative")
	v.Check(s.Area.Unit.Valid(), "specifications.area.unit", "invalid area unit")
	v.Check(s.Floors >= 0, "specifications.floors", "floors cannot be negative")
	v.Check(s.Parking >= 0, "specifications.parking", "parking cannot be negative")
	v.Check(s.Furnishing.Valid(), "specifications.furnishing", "invalid furnishing")
	if y := s.YearBuilt; y != nil {
		v.Check(*y >= 1800 && *y <= int64(now.Year()+5), "specifications.yearBuilt", "year built is out of range")
	}
}
