package delete_property

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

// Request identifies the listing to delete.
type Request struct {
	PropertyID string
	Caller     auth.Principal
}

// Interactor handles the delete property use case.
type Interactor struct {
	repo       contracts.PropertyRepository
	outboxRepo contracts.OutboxRepository
	media      media.Store
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new delete property interactor.
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

// Execute removes the listing with its images and inquiries, then deletes
// the image files from the media host. Media failures are only logged.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return domain.ErrNotOwner
	}

	property.MarkDeleted(req.Caller.UserID, i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(property.ID()))

	for _, event := range property.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, img := range property.Images() {
		if img.PublicID == "" {
			continue
		}
		if err := i.media.Delete(ctx, img.PublicID); err != nil {
			log.Printf("delete_property: failed to delete image %s of %s: %v", img.PublicID, property.ID(), err)
		}
	}

	return nil
}
