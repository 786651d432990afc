package change_password

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request carries the current and the new password.
type Request struct {
	Caller          auth.Principal
	CurrentPassword string
	NewPassword     string
}

// Interactor handles the change password use case.
type Interactor struct {
	repo      contracts.UserRepository
	hasher    *auth.Hasher
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new change password interactor.
func NewInteractor(repo contracts.UserRepository, hasher *auth.Hasher, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, hasher: hasher, committer: committer, clock: clock}
}

func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	v := apperr.NewValidation()
	v.Required("currentPassword", req.CurrentPassword)
	if v.Required("newPassword", req.NewPassword) {
		v.MinLen("newPassword", req.NewPassword, domain.MinPasswordLen)
	}
	if err := v.OrNil(); err != nil {
		return err
	}

	user, err := i.repo.GetByID(ctx, req.Caller.UserID)
	if err != nil {
		return err
	}

	if err := i.hasher.Check(user.PasswordHash(), req.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return apperr.Invalid("currentPassword", "current password is incorrect")
		}
		return err
	}

	hash, err := i.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.SetPasswordHash(hash, i.clock.Now())

	mut, err := i.repo.UpdateMut(user)
	if err != nil {
		return err
	}
	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
