package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/models/m_property_image"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// PropertyRepo implements PropertyRepository for Spanner.
type PropertyRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_property.Model
	images    *m_property_image.Model
}

// NewPropertyRepo creates a new PropertyRepo.
func NewPropertyRepo(client *spanner.Client, comm *committer.Committer) contracts.PropertyRepository {
	return &PropertyRepo{
		client:    client,
		committer: comm,
		model:     m_property.NewModel(),
		images:    m_property_image.NewModel(),
	}
}

// InsertMuts creates mutations for a new property and its images.
func (r *PropertyRepo) InsertMuts(p *domain.Property) ([]*spanner.Mutation, error) {
	data := r.domainToData(p)
	muts := []*spanner.Mutation{r.model.InsertMut(data)}
	for _, img := range p.Images() {
		muts = append(muts, r.images.UpsertMut(imageToData(p.ID(), img)))
	}
	return muts, nil
}

// UpdateMuts creates mutations for the dirty fields only.
func (r *PropertyRepo) UpdateMuts(p *domain.Property) ([]*spanner.Mutation, error) {
	changes := p.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldTitle) {
		updates[m_property.Title] = p.Title()
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_property.Description] = p.Description()
	}
	if changes.Dirty(domain.FieldType) {
		updates[m_property.PropertyType] = string(p.Type())
	}
	if changes.Dirty(domain.FieldListingType) {
		updates[m_property.ListingType] = string(p.ListingType())
	}
	if changes.Dirty(domain.FieldStatus) {
		updates[m_property.Status] = string(p.Status())
	}
	if changes.Dirty(domain.FieldPrice) {
		price := p.Price()
		updates[m_property.PriceAmount] = *price.Amount.Rat()
		updates[m_property.PriceCurrency] = price.Currency
		updates[m_property.PriceUnit] = string(price.Unit)
	}
	if changes.Dirty(domain.FieldAddress) {
		for col, val := range addressColumns(p.Address()) {
			updates[col] = val
		}
	}
	if changes.Dirty(domain.FieldSpecifications) {
		for col, val := range specColumns(p.Specifications()) {
			updates[col] = val
		}
	}
	if changes.Dirty(domain.FieldAmenities) {
		updates[m_property.Amenities] = p.Amenities()
	}
	if changes.Dirty(domain.FieldFeatured) {
		updates[m_property.Featured] = p.Featured()
	}
	if changes.Dirty(domain.FieldVerified) {
		updates[m_property.Verified] = p.Verified()
	}

	muts := make([]*spanner.Mutation, 0)
	if mut := r.model.UpdateMut(p.ID(), updates); mut != nil {
		muts = append(muts, mut)
	} else if changes.Dirty(domain.FieldImages) {
		muts = append(muts, r.model.TouchMut(p.ID()))
	}

	if changes.Dirty(domain.FieldImages) {
		for _, id := range p.RemovedImageIDs() {
			muts = append(muts, r.images.DeleteMut(p.ID(), id))
		}
		for _, img := range p.Images() {
			muts = append(muts, r.images.UpsertMut(imageToData(p.ID(), img)))
		}
	}

	return muts, nil
}

// DeleteMut removes the property row.
func (r *PropertyRepo) DeleteMut(propertyID string) *spanner.Mutation {
	return r.model.DeleteMut(propertyID)
}

// GetByID retrieves a property with its images in one read-only transaction.
func (r *PropertyRepo) GetByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_property.TableName, spanner.Key{propertyID}, m_property.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to read property: %w", err)
	}

	var data m_property.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse property: %w", err)
	}

	images, err := readImages(ctx, txn, propertyID)
	if err != nil {
		return nil, err
	}

	snap := domain.Snapshot{
		ID:      data.PropertyID,
		AgentID: data.AgentID,
		Details: detailsFromData(&data),
		Counters: domain.Counters{
			Views:       data.Views,
			Impressions: data.Impressions,
			Clicks:      data.Clicks,
		},
		Featured:  data.Featured,
		Verified:  data.Verified,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for i := range images {
		snap.Images = append(snap.Images, imageFromData(&images[i]))
	}

	return domain.ReconstructProperty(snap), nil
}

// IncrementCounter runs an UPDATE ... SET c = c + 1.
func (r *PropertyRepo) IncrementCounter(ctx context.Context, propertyID string, counter contracts.Counter) error {
	stmt, err := r.model.IncrementStmt(propertyID, string(counter))
	if err != nil {
		return err
	}
	n, err := r.committer.Update(ctx, stmt)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepo) domainToData(p *domain.Property) *m_property.Data {
	price := p.Price()
	data := &m_property.Data{
		PropertyID:    p.ID(),
		AgentID:       p.AgentID(),
		Title:         p.Title(),
		Description:   p.Description(),
		PropertyType:  string(p.Type()),
		ListingType:   string(p.ListingType()),
		Status:        string(p.Status()),
		PriceAmount:   *price.Amount.Rat(),
		PriceCurrency: price.Currency,
		PriceUnit:     string(price.Unit),
		Amenities:     p.Amenities(),
		Views:         p.Counters().Views,
		Impressions:   p.Counters().Impressions,
		Clicks:        p.Counters().Clicks,
		Featured:      p.Featured(),
		Verified:      p.Verified(),
	}

	addr := p.Address()
	data.Street = nullString(addr.Street)
	data.City = addr.City
	data.State = addr.State
	data.ZipCode = nullString(addr.ZipCode)
	data.Country = addr.Country
	if c := addr.Coordinates; c != nil {
		data.Latitude = spanner.NullFloat64{Float64: c.Lat, Valid: true}
		data.Longitude = spanner.NullFloat64{Float64: c.Lng, Valid: true}
	}

	specs := p.Specifications()
	data.Bedrooms = specs.Bedrooms
	data.Bathrooms = specs.Bathrooms
	data.AreaValue = specs.Area.Value
	data.AreaUnit = string(specs.Area.Unit)
	data.Floors = specs.Floors
	data.Parking = specs.Parking
	data.Furnishing = string(specs.Furnishing)
	if specs.YearBuilt != nil {
		data.YearBuilt = spanner.NullInt64{Int64: *specs.YearBuilt, Valid: true}
	}

	return data
}

type rowReader interface {
	Query(ctx context.Context, stmt spanner.Statement) *spanner.RowIterator
}

// readImages returns the images of one property ordered by position.
func readImages(ctx context.Context, rd rowReader, propertyID string) ([]m_property_image.Data, error) {
	byProperty, err := readImagesFor(ctx, rd, []string{propertyID})
	if err != nil {
		return nil, err
	}
	return byProperty[propertyID], nil
}

// readImagesFor loads the images of several properties in one query.
func readImagesFor(ctx context.Context, rd rowReader, propertyIDs []string) (map[string][]m_property_image.Data, error) {
	out := make(map[string][]m_property_image.Data, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return out, nil
	}

	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s IN UNNEST(@ids) ORDER BY %s, %s",
			joinColumns(m_property_image.Columns), m_property_image.TableName,
			m_property_image.PropertyID, m_property_image.PropertyID, m_property_image.Position),
		Params: map[string]interface{}{"ids": propertyIDs},
	}

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate images: %w", err)
		}
		var img m_property_image.Data
		if err := row.ToStruct(&img); err != nil {
			return nil, fmt.Errorf("failed to parse image: %w", err)
		}
		out[img.PropertyID] = append(out[img.PropertyID], img)
	}
	return out, nil
}
