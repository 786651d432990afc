package remove_image

import (
	"context"
	"fmt"
	"log"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

// Request identifies the image to remove.
type Request struct {
	PropertyID string
	ImageID    string
	Caller     auth.Principal
}

// Interactor handles the remove image use case.
type Interactor struct {
	repo       contracts.PropertyRepository
	outboxRepo contracts.OutboxRepository
	media      media.Store
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new remove image interactor.
func NewInteractor(
	repo contracts.PropertyRepository,
	outboxRepo contracts.OutboxRepository,
	media media.Store,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		media:      media,
		committer:  committer,
		clock:      clock,
	}
}

// Execute detaches the image and deletes its file. When the primary image is
// removed the first remaining image becomes primary.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]domain.Image, error) {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return nil, domain.ErrNotOwner
	}

	removed, err := property.RemoveImage(req.ImageID, i.clock.Now())
	if err != nil {
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

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if removed.PublicID != "" {
		if err := i.media.Delete(ctx, removed.PublicID); err != nil {
			log.Printf("remove_image: failed to delete %s: %v", removed.PublicID, err)
		}
	}

	return property.Images(), nil
}
