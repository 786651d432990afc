package track_engagement

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Engagement events accepted from clients.
const (
	EventImpression = "impression"
	EventClick      = "click"
)

// Request names the listing and the engagement event.
type Request struct {
	PropertyID string
	Event      string
}

// Interactor increments engagement counters.
type Interactor struct {
	repo contracts.PropertyRepository
}

// NewInteractor creates a new track engagement interactor.
func NewInteractor(repo contracts.PropertyRepository) *Interactor {
	return &Interactor{repo: repo}
}

// Execute adds one to the counter matching req.Event. Only public listings
// are counted; others report not found, as they do on read.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	var counter contracts.Counter
	switch req.Event {
	case EventImpression:
		counter = contracts.CounterImpressions
	case EventClick:
		counter = contracts.CounterClicks
	default:
		return apperr.Invalid("event", "event must be impression or click")
	}

	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	if !property.IsPublic() {
		return domain.ErrPropertyNotFound
	}

	return i.repo.IncrementCounter(ctx, req.PropertyID, counter)
}
