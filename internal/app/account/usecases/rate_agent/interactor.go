package rate_agent

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request is one rating of an agent.
type Request struct {
	Caller  auth.Principal
	AgentID string
	Rating  int
}

// Interactor folds ratings into the agent's running mean.
type Interactor struct {
	repo       contracts.UserRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Transactor
	clock      clock.Clock
}

// NewInteractor creates a new rate agent interactor.
func NewInteractor(
	repo contracts.UserRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Transactor,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute reads the current rating and writes the folded one in the same
// read-write transaction, so concurrent ratings are never lost.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Rating, error) {
	var result domain.Rating

	err := i.committer.RunInTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		agent, err := i.repo.GetForUpdate(ctx, txn, req.AgentID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrAgentNotFound
			}
			return nil, err
		}
		defer agent.ClearEvents()

		if err := agent.Rate(req.Caller.UserID, req.Rating, i.clock.Now()); err != nil {
			return nil, err
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

		result = agent.AgentProfile().Rating
		return plan, nil
	})
	if err != nil {
		return domain.Rating{}, err
	}
	return result, nil
}
