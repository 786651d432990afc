package open_contact

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
}

// Interactor returns one submission to an admin and marks it read.
type Interactor struct {
	repo      contracts.ContactRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new open contact interactor.
func NewInteractor(repo contracts.ContactRepository, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, committer: committer, clock: clock}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Contact, error) {
	if !req.Caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	contact, err := i.repo.GetByID(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}

	if !contact.MarkRead(i.clock.Now()) {
		return contact, nil
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(contact))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return contact, nil
}
