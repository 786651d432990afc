package set_primary_image

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request identifies the image to make primary.
type Request struct {
	PropertyID string
	ImageID    string
	Caller     auth.Principal
}

// Interactor handles the set primary image use case.
type Interactor struct {
	repo       contracts.PropertyRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new set primary image interactor.
func NewInteractor(
	repo contracts.PropertyRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute makes req.ImageID the only primary image of the listing.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]domain.Image, error) {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return nil, domain.ErrNotOwner
	}

	if err := property.SetPrimaryImage(req.ImageID, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	muts, err := i.repo.UpdateMuts(property)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	for _, event := range property.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	if !plan.IsEmpty() {
		if err := i.committer.Apply(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return property.Images(), nil
}
