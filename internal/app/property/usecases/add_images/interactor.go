package add_images

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

// Request carries the files to attach and optional captions by position.
type Request struct {
	PropertyID string
	Caller     auth.Principal
	Files      []media.File
	Captions   []string
}

// Interactor uploads images and attaches them to a listing.
type Interactor struct {
	repo       contracts.PropertyRepository
	outboxRepo contracts.OutboxRepository
	uploader   *media.Uploader
	limits     media.Limits
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new add images interactor.
func NewInteractor(
	repo contracts.PropertyRepository,
	outboxRepo contracts.OutboxRepository,
	uploader *media.Uploader,
	limits media.Limits,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		uploader:   uploader,
		limits:     limits,
		committer:  committer,
		clock:      clock,
	}
}

// Execute uploads req.Files in parallel and appends them to the listing.
// It returns the listing's images after the change.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]domain.Image, error) {
	if err := i.limits.Validate(req.Files); err != nil {
		return nil, err
	}

	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return nil, domain.ErrNotOwner
	}

	objects, err := i.uploader.UploadAll(ctx, req.Files)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	images := make([]domain.Image, len(objects))
	for n, obj := range objects {
		images[n] = domain.Image{
			ID:        uuid.New().String(),
			URL:       obj.URL,
			PublicID:  obj.PublicID,
			CreatedAt: now,
		}
		if n < len(req.Captions) {
			images[n].Caption = req.Captions[n]
		}
	}
	property.AddImages(images, now)

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
		i.discard(ctx, objects)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return property.Images(), nil
}

// discard removes uploaded objects that were never attached.
func (i *Interactor) discard(ctx context.Context, objects []media.Object) {
	for _, obj := range objects {
		if err := i.uploader.Delete(ctx, obj.PublicID); err != nil {
			log.Printf("add_images: failed to discard %s: %v", obj.PublicID, err)
		}
	}
}
