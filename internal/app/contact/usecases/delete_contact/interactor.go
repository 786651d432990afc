package delete_contact

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

type Request struct {
	Caller    auth.Principal
	ContactID string
}

// Interactor deletes a submission and its notes.
type Interactor struct {
	repo      contracts.ContactRepository
	committer committer.Applier
}

// NewInteractor creates a new delete contact interactor.
func NewInteractor(repo contracts.ContactRepository, committer committer.Applier) *Interactor {
	return &Interactor{repo: repo, committer: committer}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if !req.Caller.IsAdmin() {
		return domain.ErrAdminOnly
	}

	if _, err := i.repo.GetByID(ctx, req.ContactID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.ContactID))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
