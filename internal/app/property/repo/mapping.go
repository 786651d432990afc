package repo

import (
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/models/m_property_image"
)

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func detailsFromData(d *m_property.Data) domain.Details {
	det := domain.Details{
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.PropertyType(d.PropertyType),
		ListingType: domain.ListingType(d.ListingType),
		Status:      domain.Status(d.Status),
		Price: domain.Price{
			Amount:   domain.NewMoneyFromRat(&d.PriceAmount),
			Currency: d.PriceCurrency,
			Unit:     domain.PriceUnit(d.PriceUnit),
		},
		Address: domain.Address{
			Street:  d.Street.StringVal,
			City:    d.City,
			State:   d.State,
			ZipCode: d.ZipCode.StringVal,
			Country: d.Country,
		},
		Specifications: domain.Specifications{
			Bedrooms:   d.Bedrooms,
			Bathrooms:  d.Bathrooms,
			Area:       domain.Area{Value: d.AreaValue, Unit: domain.AreaUnit(d.AreaUnit)},
			Floors:     d.Floors,
			Parking:    d.Parking,
			Furnishing: domain.Furnishing(d.Furnishing),
		},
		Amenities: d.Amenities,
	}
	if d.Latitude.Valid && d.Longitude.Valid {
		det.Address.Coordinates = &domain.Coordinates{Lat: d.Latitude.Float64, Lng: d.Longitude.Float64}
	}
	if d.YearBuilt.Valid {
		y := d.YearBuilt.Int64
		det.Specifications.YearBuilt = &y
	}
	return det
}

func imageFromData(d *m_property_image.Data) domain.Image {
	return domain.Image{
		ID:        d.ImageID,
		URL:       d.URL,
		PublicID:  d.PublicID,
		Caption:   d.Caption.StringVal,
		IsPrimary: d.IsPrimary,
		Position:  d.Position,
		CreatedAt: d.CreatedAt,
	}
}

func imageToData(propertyID string, img domain.Image) *m_property_image.Data {
	return &m_property_image.Data{
		PropertyID: propertyID,
		ImageID:    img.ID,
		URL:        img.URL,
		PublicID:   img.PublicID,
		Caption:    nullString(img.Caption),
		IsPrimary:  img.IsPrimary,
		Position:   img.Position,
		CreatedAt:  img.CreatedAt,
	}
}

func addressColumns(a domain.Address) map[string]interface{} {
	cols := map[string]interface{}{
		m_property.Street:    nullString(a.Street),
		m_property.City:      a.City,
		m_property.State:     a.State,
		m_property.ZipCode:   nullString(a.ZipCode),
		m_property.Country:   a.Country,
		m_property.Latitude:  spanner.NullFloat64{},
		m_property.Longitude: spanner.NullFloat64{},
	}
	if c := a.Coordinates; c != nil {
		cols[m_property.Latitude] = spanner.NullFloat64{Float64: c.Lat, Valid: true}
		cols[m_property.Longitude] = spanner.NullFloat64{Float64: c.Lng, Valid: true}
	}
	return cols
}

func specColumns(s domain.Specifications) map[string]interface{} {
	cols := map[string]interface{}{
		m_property.Bedrooms:   s.Bedrooms,
		m_property.Bathrooms:  s.Bathrooms,
		m_property.AreaValue:  s.Area.Value,
		m_property.AreaUnit:   string(s.Area.Unit),
		m_property.Floors:     s.Floors,
		m_property.Parking:    s.Parking,
		m_property.Furnishing: string(s.Furnishing),
		m_property.YearBuilt:  spanner.NullInt64{},
	}
	if s.YearBuilt != nil {
		cols[m_property.YearBuilt] = spanner.NullInt64{Int64: *s.YearBuilt, Valid: true}
	}
	return cols
}

// dataToDTO converts a row plus its images to the client shape.
// The agent summary is filled in by the caller.
func dataToDTO(d *m_property.Data, images []m_property_image.Data) *contracts.PropertyDTO {
	det := detailsFromData(d)
	dto := &contracts.PropertyDTO{
		ID:          d.PropertyID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.PropertyType,
		ListingType: d.ListingType,
		Status:      d.Status,
		Price: contracts.PriceDTO{
			Amount:   det.Price.Amount,
			Currency: d.PriceCurrency,
			Unit:     d.PriceUnit,
		},
		Address: contracts.AddressDTO{
			Street:  det.Address.Street,
			City:    d.City,
			State:   d.State,
			ZipCode: det.Address.ZipCode,
			Country: d.Country,
		},
		Specifications: contracts.SpecificationsDTO{
			Bedrooms:   d.Bedrooms,
			Bathrooms:  d.Bathrooms,
			Area:       contracts.AreaDTO{Value: d.AreaValue, Unit: d.AreaUnit},
			Floors:     d.Floors,
			Parking:    d.Parking,
			Furnishing: d.Furnishing,
			YearBuilt:  det.Specifications.YearBuilt,
		},
		Amenities:   d.Amenities,
		Images:      make([]contracts.ImageDTO, 0, len(images)),
		Agent:       contracts.AgentSummary{ID: d.AgentID},
		Views:       d.Views,
		Impressions: d.Impressions,
		Clicks:      d.Clicks,
		Featured:    d.Featured,
		Verified:    d.Verified,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if dto.Amenities == nil {
		dto.Amenities = []string{}
	}
	if c := det.Address.Coordinates; c != nil {
		dto.Address.Coordinates = &contracts.CoordinatesDTO{Lat: c.Lat, Lng: c.Lng}
	}
	for _, img := range images {
		dto.Images = append(dto.Images, contracts.ImageDTO{
			ID:        img.ImageID,
			URL:       img.URL,
			PublicID:  img.PublicID,
			Caption:   img.Caption.StringVal,
			IsPrimary: img.IsPrimary,
		})
	}
	return dto
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
