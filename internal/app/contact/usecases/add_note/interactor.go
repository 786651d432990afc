package add_note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

type Request struct {
	Caller    auth.Principal
	ContactID string
	Note      string
}

// Interactor appends a response note to a submission.
type Interactor struct {
	repo      contracts.ContactRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new add note interactor.
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

	note, err := contact.AddNote(uuid.New().String(), req.Caller.UserID, req.Note, i.clock.Now())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.NoteInsertMut(contact.ID(), note))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return contact, nil
}
