package update_property

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

// Request contains a typed partial update of a listing.
type Request struct {
	PropertyID string
	Caller     auth.Principal
	Update     domain.Update
}

// Interactor handles the update property use case.
type Interactor struct {
	repo             contracts.PropertyRepository
	outboxRepo       contracts.OutboxRepository
	priceHistoryRepo contracts.PriceHistoryRepository
	committer        committer.Applier
	clock            clock.Clock
}

// NewInteractor creates a new update property interactor.
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

// Execute applies the update for the owner or an admin.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}

	// Clear events on function exit to prevent duplicates on retry
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return domain.ErrNotOwner
	}
	if req.Update.TouchesAdminFields() && !req.Caller.IsAdmin() {
		return domain.ErrAdminOnly
	}

	if err := property.ApplyUpdate(req.Update, i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()

	muts, err := i.repo.UpdateMuts(property)
	if err != nil {
		return err
	}
	plan.AddMultiple(muts)

	if change := property.PriceChange(); change != nil {
		plan.Add(i.priceHistoryRepo.InsertMut(uuid.New().String(), property.ID(), change, req.Caller.UserID))
	}

	for _, event := range property.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}

	if plan.IsEmpty() {
		return nil // No changes
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
