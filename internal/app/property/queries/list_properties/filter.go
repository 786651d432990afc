package list_properties

import (
	"strconv"
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// DefaultPageSize is the page size when the client sends none.
const DefaultPageSize = 12

// Sorting is the property sort allow-list.
var Sorting = paging.SortSpec{
	Columns: map[string]string{
		"price":     m_property.PriceAmount,
		"createdAt": m_property.CreatedAt,
		"views":     m_property.Views,
		"area":      m_property.AreaValue,
	},
	Default: []query.Order{
		{Column: m_property.Featured, Direction: query.Desc},
		{Column: m_property.CreatedAt, Direction: query.Desc},
	},
}

// Filter holds the raw search parameters as received.
type Filter struct {
	Type         string
	ListingType  string
	City         string
	State        string
	MinBedrooms  string
	MinBathrooms string
	MinPrice     string
	MaxPrice     string
	Search       string
	Amenities    string
	Featured     string
	Status       string
	Mine         bool
}

// Values returns the non-empty parameters keyed by their request name.
func (f Filter) Values() map[string]string {
	out := make(map[string]string)
	add := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	add("type", f.Type)
	add("listingType", f.ListingType)
	add("city", f.City)
	add("state", f.State)
	add("minBedrooms", f.MinBedrooms)
	add("minBathrooms", f.MinBathrooms)
	add("minPrice", f.MinPrice)
	add("maxPrice", f.MaxPrice)
	add("search", f.Search)
	add("amenities", f.Amenities)
	add("featured", f.Featured)
	add("status", f.Status)
	if f.Mine {
		out["mine"] = "true"
	}
	return out
}

// BuildFilter turns raw parameters into conditions. Empty or unparsable
// parameters produce no condition. Without Mine the result is restricted
// to active listings unless an admin asks for a specific status; with Mine
// it is restricted to the caller's listings and any valid status.
func BuildFilter(f Filter, caller *auth.Principal) ([]query.Condition, error) {
	conds := make([]query.Condition, 0)

	status := domain.Status(strings.TrimSpace(f.Status))
	if f.Mine {
		if caller == nil {
			return nil, apperr.Kind(apperr.ErrUnauthenticated, errMineRequiresAuth)
		}
		if !caller.CanList() {
			return nil, domain.ErrNotAgent
		}
		conds = append(conds, query.Eq(m_property.AgentID, caller.UserID))
		if status.Valid() {
			conds = append(conds, query.Eq(m_property.Status, string(status)))
		}
	} else {
		if !status.Valid() || caller == nil || !caller.IsAdmin() {
			status = domain.StatusActive
		}
		conds = append(conds, query.Eq(m_property.Status, string(status)))
	}

	if t := domain.PropertyType(strings.TrimSpace(f.Type)); t.Valid() {
		conds = append(conds, query.Eq(m_property.PropertyType, string(t)))
	}
	if l := domain.ListingType(strings.TrimSpace(f.ListingType)); l.Valid() {
		conds = append(conds, query.Eq(m_property.ListingType, string(l)))
	}
	if c := strings.TrimSpace(f.City); c != "" {
		conds = append(conds, query.ContainsFold(m_property.City, c))
	}
	if s := strings.TrimSpace(f.State); s != "" {
		conds = append(conds, query.ContainsFold(m_property.State, s))
	}
	if n, ok := parseCount(f.MinBedrooms); ok {
		conds = append(conds, query.Gte(m_property.Bedrooms, n))
	}
	if n, ok := parseCount(f.MinBathrooms); ok {
		conds = append(conds, query.Gte(m_property.Bathrooms, n))
	}
	if v, ok := parseAmount(f.MinPrice); ok {
		conds = append(conds, query.Gte(m_property.PriceAmount, v))
	}
	if v, ok := parseAmount(f.MaxPrice); ok {
		conds = append(conds, query.Lte(m_property.PriceAmount, v))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		conds = append(conds, query.Or(
			query.ContainsFold(m_property.Title, s),
			query.ContainsFold(m_property.Description, s),
			query.ContainsFold(m_property.City, s),
			query.ContainsFold(m_property.State, s),
		))
	}
	if f.Amenities != "" {
		for _, a := range domain.NormalizeAmenities(strings.Split(f.Amenities, ",")) {
			conds = append(conds, query.ArrayContains(m_property.Amenities, a))
		}
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(f.Featured)); err == nil {
		conds = append(conds, query.Eq(m_property.Featured, b))
	}

	return conds, nil
}

func parseCount(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseAmount(raw string) (spanner.NullNumeric, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return spanner.NullNumeric{}, false
	}
	m, err := domain.ParseMoney(raw)
	if err != nil || m.IsNegative() {
		return spanner.NullNumeric{}, false
	}
	return spanner.NullNumeric{Numeric: *m.Rat(), Valid: true}, true
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
