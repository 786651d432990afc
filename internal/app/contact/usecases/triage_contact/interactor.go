package triage_contact

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

type Request struct {
	Caller    auth.Principal
	ContactID string
	Triage    domain.Triage
}

// Interactor updates status, priority and assignee of a submission.
type Interactor struct {
	repo       contracts.ContactRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new triage contact interactor.
func NewInteractor(
	repo contracts.ContactRepository,
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

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Contact, error) {
	if !req.Caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	contact, err := i.repo.GetByID(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}
	defer contact.ClearEvents()

	if err := contact.ApplyTriage(req.Triage, req.Caller.UserID, i.clock.Now()); err != nil {
		return nil, err
	}

	mut := i.repo.UpdateMut(contact)
	if mut == nil {
		return contact, nil
	}

	plan := committer.NewPlan()
	plan.Add(mut)

	for _, event := range contact.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return contact, nil
}
