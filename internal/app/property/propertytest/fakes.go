// Package propertytest provides in-memory fakes of the property contracts
// for use-case tests.
package propertytest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/media"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

func marker(table, id string) *spanner.Mutation {
	return spanner.Delete(table, spanner.Key{id})
}

// Repo is an in-memory PropertyRepository. Stored aggregates are the
// ones handed to InsertMuts and UpdateMuts.
type Repo struct {
	mu         sync.Mutex
	Properties map[string]*domain.Property
	Inserted   []*domain.Property
	Updated    []*domain.Property
	Deleted    []string
	Counters   map[string]int
	CounterErr error
}

func NewRepo(props ...*domain.Property) *Repo {
	r := &Repo{Properties: map[string]*domain.Property{}, Counters: map[string]int{}}
	for _, p := range props {
		r.Properties[p.ID()] = p
	}
	return r
}

func (r *Repo) InsertMuts(p *domain.Property) ([]*spanner.Mutation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inserted = append(r.Inserted, p)
	r.Properties[p.ID()] = p
	return []*spanner.Mutation{marker("properties", p.ID())}, nil
}

func (r *Repo) UpdateMuts(p *domain.Property) ([]*spanner.Mutation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !p.Changes().HasChanges() {
		return nil, nil
	}
	r.Updated = append(r.Updated, p)
	return []*spanner.Mutation{marker("properties", p.ID())}, nil
}

func (r *Repo) DeleteMut(propertyID string) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deleted = append(r.Deleted, propertyID)
	return marker("properties", propertyID)
}

func (r *Repo) GetByID(_ context.Context, propertyID string) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Properties[propertyID]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func (r *Repo) IncrementCounter(_ context.Context, propertyID string, counter contracts.Counter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CounterErr != nil {
		return r.CounterErr
	}
	if _, ok := r.Properties[propertyID]; !ok {
		return domain.ErrPropertyNotFound
	}
	r.Counters[propertyID+"/"+string(counter)]++
	return nil
}

// PriceHistory records price changes.
type PriceHistory struct {
	Changes []domain.PriceChange
}

func (h *PriceHistory) InsertMut(historyID, propertyID string, change *domain.PriceChange, _ string) *spanner.Mutation {
	h.Changes = append(h.Changes, *change)
	return marker("price_history", historyID)
}

func (h *PriceHistory) ListByProperty(context.Context, string, int) ([]contracts.PriceHistoryRecord, error) {
	return nil, nil
}

// Inquiries records inserted inquiries.
type Inquiries struct {
	Inserted []*domain.Inquiry
}

func (q *Inquiries) InsertMut(inquiry *domain.Inquiry) *spanner.Mutation {
	q.Inserted = append(q.Inserted, inquiry)
	return marker("property_inquiries", inquiry.ID)
}

func (q *Inquiries) ListByProperty(context.Context, string, paging.Page) ([]domain.Inquiry, int64, error) {
	out := make([]domain.Inquiry, len(q.Inserted))
	for i, in := range q.Inserted {
		out[i] = *in
	}
	return out, int64(len(out)), nil
}

// MediaStore is an in-memory media host.
type MediaStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	Deleted   []string
	FailPut   string
	DeleteErr error
}

func NewMediaStore() *MediaStore {
	return &MediaStore{Objects: map[string][]byte{}}
}

func (s *MediaStore) Put(_ context.Context, key string, body io.Reader, _ string) (media.Object, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return media.Object{}, err
	}
	if s.FailPut != "" && bytes.Equal(data, []byte(s.FailPut)) {
		return media.Object{}, errors.New("media host rejected file")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data
	return media.Object{PublicID: key, URL: fmt.Sprintf("https://media.test/%s", key)}, nil
}

func (s *MediaStore) Delete(_ context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, publicID)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Objects, publicID)
	return nil
}

// File builds an upload candidate with the given body.
func File(name, contentType, body string) media.File {
	return media.File{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewBufferString(body)), nil
		},
	}
}

// Details returns a valid listing.
func Details() domain.Details {
	return domain.Details{
		Title:       "Garden villa",
		Description: "Four bedrooms with a private garden",
		Type:        domain.TypeVilla,
		ListingType: domain.ListingSale,
		Status:      domain.StatusActive,
		Price: domain.Price{
			Amount:   domain.NewMoneyFromInt(12500000),
			Currency: domain.DefaultCurrency,
			Unit:     domain.PriceTotal,
		},
		Address: domain.Address{City: "Pune", State: "Maharashtra", Country: domain.DefaultCountry},
		Specifications: domain.Specifications{
			Bedrooms:   4,
			Bathrooms:  3,
			Area:       domain.Area{Value: 2400, Unit: domain.AreaSqft},
			Furnishing: domain.Unfurnished,
		},
		Amenities: []string{"garden", "parking"},
	}
}

// Stored returns a clean aggregate as GetByID would load it.
func Stored(id, agentID string, status domain.Status, images []domain.Image, now time.Time) *domain.Property {
	d := Details()
	d.Status = status
	return domain.ReconstructProperty(domain.Snapshot{
		ID:        id,
		AgentID:   agentID,
		Details:   d,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// ReadModel serves listings from a Repo and records every search.
type ReadModel struct {
	mu       sync.Mutex
	repo     *Repo
	Searches []contracts.ListQuery
	Rows     []*contracts.PropertyDTO
	Total    int64
}

func NewReadModel(repo *Repo) *ReadModel {
	return &ReadModel{repo: repo}
}

func (m *ReadModel) GetProperty(ctx context.Context, propertyID string) (*contracts.PropertyDTO, error) {
	p, err := m.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return DTO(p), nil
}

func (m *ReadModel) ListProperties(_ context.Context, q contracts.ListQuery) ([]*contracts.PropertyDTO, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Searches = append(m.Searches, q)
	return m.Rows, m.Total, nil
}

// LastSearch returns the most recent search, or false when none ran.
func (m *ReadModel) LastSearch() (contracts.ListQuery, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Searches) == 0 {
		return contracts.ListQuery{}, false
	}
	return m.Searches[len(m.Searches)-1], true
}

// DTO renders an aggregate the way the read model returns it.
func DTO(p *domain.Property) *contracts.PropertyDTO {
	price := p.Price()
	addr := p.Address()
	specs := p.Specifications()
	counters := p.Counters()

	images := make([]contracts.ImageDTO, 0, len(p.Images()))
	for _, img := range p.Images() {
		images = append(images, contracts.ImageDTO{
			ID:        img.ID,
			URL:       img.URL,
			PublicID:  img.PublicID,
			Caption:   img.Caption,
			IsPrimary: img.IsPrimary,
		})
	}

	return &contracts.PropertyDTO{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Type:        string(p.Type()),
		ListingType: string(p.ListingType()),
		Status:      string(p.Status()),
		Price:       contracts.PriceDTO{Amount: price.Amount, Currency: price.Currency, Unit: string(price.Unit)},
		Address:     contracts.AddressDTO{City: addr.City, State: addr.State, Country: addr.Country},
		Specifications: contracts.SpecificationsDTO{
			Bedrooms:   specs.Bedrooms,
			Bathrooms:  specs.Bathrooms,
			Area:       contracts.AreaDTO{Value: specs.Area.Value, Unit: string(specs.Area.Unit)},
			Furnishing: string(specs.Furnishing),
		},
		Amenities:   p.Amenities(),
		Images:      images,
		Agent:       contracts.AgentSummary{ID: p.AgentID()},
		Views:       counters.Views,
		Impressions: counters.Impressions,
		Clicks:      counters.Clicks,
		Featured:    p.Featured(),
		Verified:    p.Verified(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
