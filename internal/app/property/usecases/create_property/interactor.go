package create_property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request contains the data needed to create a listing.
type Request struct {
	Caller  auth.Principal
	Details domain.Details
}

// Interactor handles the create property use case.
type Interactor struct {
	repo             contracts.PropertyRepository
	outboxRepo       contracts.OutboxRepository
	priceHistoryRepo contracts.PriceHistoryRepository
	committer        committer.Applier
	clock            clock.Clock
}

// NewInteractor creates a new create property interactor.
func NewInteractor(
	repo contracts.PropertyRepository,
	outboxRepo contracts.OutboxRepository,
	priceHistoryRepo contracts.PriceHistoryRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:             repo,
		outboxRepo:       outboxRepo,
		priceHistoryRepo: priceHistoryRepo,
		committer:        committer,
		clock:            clock,
	}
}

// Execute creates a listing owned by the caller and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if !req.Caller.CanList() {
		return "", domain.ErrNotAgent
	}

	propertyID := uuid.New().String()
	property, err := domain.NewProperty(propertyID, req.Caller.UserID, req.Details, i.clock.Now())
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()

	muts, err := i.repo.InsertMuts(property)
	if err != nil {
		return "", err
	}
	plan.AddMultiple(muts)

	// Initial price opens the history
	if change := property.PriceChange(); change != nil {
		plan.Add(i.priceHistoryRepo.InsertMut(uuid.New().String(), propertyID, change, req.Caller.UserID))
	}

	for _, event := range property.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return "", err
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return property.ID(), nil
}
