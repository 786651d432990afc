package verify_agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

type Request struct {
	Caller   auth.Principal
	AgentID  string
	Verified bool
}

// Interactor lets admins set the verified badge of an agent.
type Interactor struct {
	repo       contracts.UserRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new verify agent interactor.
func NewInteractor(
	repo contracts.UserRepository,
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

func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	if !req.Caller.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	agent, err := i.repo.GetByID(ctx, req.AgentID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	defer agent.ClearEvents()

	if err := agent.SetVerified(req.Verified, req.Caller.UserID, i.clock.Now()); err != nil {
		return nil, err
	}
	if !agent.Changes().HasChanges() {
		return agent, nil
	}

	plan := committer.NewPlan()
	mut, err := i.repo.UpdateMut(agent)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	for _, event := range agent.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return agent, nil
}
