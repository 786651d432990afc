package update_agent_profile

import (
	"context"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

type Request struct {
	Caller  auth.Principal
	Profile domain.AgentProfileInput
}

// Interactor handles the update agent profile use case.
type Interactor struct {
	repo      contracts.UserRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update agent profile interactor.
func NewInteractor(repo contracts.UserRepository, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, committer: committer, clock: clock}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := i.repo.GetByID(ctx, req.Caller.UserID)
	if err != nil {
		return nil, err
	}

	if license, changed := user.LicenseChange(req.Profile); changed {
		holder, taken, err := i.repo.LicenseHolder(ctx, license)
		if err != nil {
			return nil, err
		}
		if taken && holder != user.ID() {
			return nil, domain.ErrLicenseTaken
		}
	}

	if err := user.UpdateAgentProfile(req.Profile, i.clock.Now()); err != nil {
		return nil, err
	}

	mut, err := i.repo.UpdateMut(user)
	if err != nil {
		return nil, err
	}
	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}
