package http

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

type priceBody struct {
	Amount   *domain.Money `json:"amount"`
	Currency string        `json:"currency"`
	Unit     string        `json:"unit"`
}

type coordinatesBody struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type addressBody struct {
	Street      string           `json:"street"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	ZipCode     string           `json:"zipCode"`
	Country     string           `json:"country"`
	Coordinates *coordinatesBody `json:"coordinates"`
}

type areaBody struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type specificationsBody struct {
	Bedrooms   int64    `json:"bedrooms"`
	Bathrooms  int64    `json:"bathrooms"`
	Area       areaBody `json:"area"`
	Floors     int64    `json:"floors"`
	Parking    int64    `json:"parking"`
	Furnishing string   `json:"furnishing"`
	YearBuilt  *int64   `json:"yearBuilt"`
}

// propertyBody is the JSON body of POST /api/properties.
type propertyBody struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Type           string             `json:"type"`
	ListingType    string             `json:"listingType"`
	Status         string             `json:"status"`
	Price          priceBody          `json:"price"`
	Address        addressBody        `json:"address"`
	Specifications specificationsBody `json:"specifications"`
	Amenities      []string           `json:"amenities"`
}

// updateBody is the JSON body of PUT /api/properties/:id. Absent fields
// are left unchanged.
type updateBody struct {
	Title          *string             `json:"title"`
	Description    *string             `json:"description"`
	Type           *string             `json:"type"`
	ListingType    *string             `json:"listingType"`
	Status         *string             `json:"status"`
	Price          *priceBody          `json:"price"`
	Address        *addressBody        `json:"address"`
	Specifications *specificationsBody `json:"specifications"`
	Amenities      *[]string           `json:"amenities"`
	Featured       *bool               `json:"featured"`
	Verified       *bool               `json:"verified"`
}

func (b priceBody) price() domain.Price {
	return domain.Price{Amount: b.Amount, Currency: b.Currency, Unit: domain.PriceUnit(b.Unit)}
}

func (b addressBody) address() domain.Address {
	a := domain.Address{
		Street:  b.Street,
		City:    b.City,
		State:   b.State,
		ZipCode: b.ZipCode,
		Country: b.Country,
	}
	if b.Coordinates != nil {
		a.Coordinates = &domain.Coordinates{Lat: b.Coordinates.Lat, Lng: b.Coordinates.Lng}
	}
	return a
}

func (b specificationsBody) specifications() domain.Specifications {
	return domain.Specifications{
		Bedrooms:   b.Bedrooms,
		Bathrooms:  b.Bathrooms,
		Area:       domain.Area{Value: b.Area.Value, Unit: domain.AreaUnit(b.Area.Unit)},
		Floors:     b.Floors,
		Parking:    b.Parking,
		Furnishing: domain.Furnishing(b.Furnishing),
		YearBuilt:  b.YearBuilt,
	}
}

func (b propertyBody) details() domain.Details {
	return domain.Details{
		Title:          b.Title,
		Description:    b.Description,
		Type:           domain.PropertyType(b.Type),
		ListingType:    domain.ListingType(b.ListingType),
		Status:         domain.Status(b.Status),
		Price:          b.Price.price(),
		Address:        b.Address.address(),
		Specifications: b.Specifications.specifications(),
		Amenities:      b.Amenities,
	}
}

func (b updateBody) update() domain.Update {
	u := domain.Update{
		Title:       b.Title,
		Description: b.Description,
		Amenities:   b.Amenities,
		Featured:    b.Featured,
		Verified:    b.Verified,
	}
	if b.Type != nil {
		t := domain.PropertyType(*b.Type)
		u.Type = &t
	}
	if b.ListingType != nil {
		l := domain.ListingType(*b.ListingType)
		u.ListingType = &l
	}
	if b.Status != nil {
		s := domain.Status(*b.Status)
		u.Status = &s
	}
	if b.Price != nil {
		p := b.Price.price()
		u.Price = &p
	}
	if b.Address != nil {
		a := b.Address.address()
		u.Address = &a
	}
	if b.Specifications != nil {
		s := b.Specifications.specifications()
		u.Specifications = &s
	}
	return u
}

func imageDTOs(images []domain.Image) []contracts.ImageDTO {
	out := make([]contracts.ImageDTO, 0, len(images))
	for _, img := range images {
		out = append(out, contracts.ImageDTO{
			ID:        img.ID,
			URL:       img.URL,
			PublicID:  img.PublicID,
			Caption:   img.Caption,
			IsPrimary: img.IsPrimary,
		})
	}
	return out
}

// bindJSON decodes the request body, reporting malformed JSON as a
// validation failure.
func bindJSON(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return apperr.Invalid("body", "malformed request body")
	}
	return nil
}

// multipartFiles returns the files of one form field as upload candidates,
// typed by their content rather than the client's header.
// The form is parsed with maxBytes of memory; larger parts spill to disk.
func multipartFiles(c echo.Context, field string, maxBytes int64) ([]media.File, *multipart.Form, error) {
	if err := c.Request().ParseMultipartForm(maxBytes); err != nil {
		return nil, nil, apperr.Invalid(field, "expected a multipart form")
	}
	form := c.Request().MultipartForm
	headers := form.File[field]
	files := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		f, err := media.Sniff(media.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
		if err != nil {
			_ = form.RemoveAll()
			return nil, nil, err
		}
		files = append(files, f)
	}
	return files, form, nil
}
