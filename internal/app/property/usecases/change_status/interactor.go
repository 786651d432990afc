package change_status

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request contains the data needed to change a listing's status.
type Request struct {
	PropertyID string
	Caller     auth.Principal
	Status     domain.Status
}

// Interactor handles the change status use case.
type Interactor struct {
	repo       contracts.PropertyRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new change status interactor.
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

// Execute moves the listing to req.Status.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	defer property.ClearEvents()

	if !req.Caller.Owns(property.AgentID()) {
		return domain.ErrNotOwner
	}

	if err := property.SetStatus(req.Status, i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()

	muts, err := i.repo.UpdateMuts(property)
	if err != nil {
		return err
	}
	plan.AddMultiple(muts)

	for _, event := range property.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return err
		}
		plan.Add(mut)
	}

	if plan.IsEmpty() {
		return nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
