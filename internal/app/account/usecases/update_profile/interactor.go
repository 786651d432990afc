package update_profile

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request is a partial update of the caller's name and phone.
type Request struct {
	Caller auth.Principal
	Name   *string
	Phone  *string
}

// Interactor handles the update profile use case.
type Interactor struct {
	repo      contracts.UserRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update profile interactor.
func NewInteractor(repo contracts.UserRepository, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, committer: committer, clock: clock}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := i.repo.GetByID(ctx, req.Caller.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(req.Name, req.Phone, i.clock.Now()); err != nil {
		return nil, err
	}

	mut, err := i.repo.UpdateMut(user)
	if err != nil {
		return nil, err
	}
	if mut == nil {
		return user, nil
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}
