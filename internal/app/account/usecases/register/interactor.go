package register

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Interactor handles account registration.
type Interactor struct {
	repo       contracts.UserRepository
	outboxRepo contracts.OutboxRepository
	hasher     *auth.Hasher
	tokens     *auth.TokenManager
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new register interactor.
func NewInteractor(
	repo contracts.UserRepository,
	outboxRepo contracts.OutboxRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenManager,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		hasher:     hasher,
		tokens:     tokens,
		committer:  committer,
		clock:      clock,
	}
}

// Execute creates the account and signs the caller in.
func (i *Interactor) Execute(ctx context.Context, req *domain.Registration) (*contracts.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := i.repo.EmailExists(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}
	if req.Agent != nil && req.Agent.LicenseNumber != nil && *req.Agent.LicenseNumber != "" {
		if _, taken, err := i.repo.LicenseHolder(ctx, *req.Agent.LicenseNumber); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.ErrLicenseTaken
		}
	}

	hash, err := i.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(uuid.New().String(), *req, hash, i.clock.Now())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(user)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	for _, event := range user.DomainEvents() {
		mut, err := i.outboxRepo.InsertMut(event)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// Lost a race on the unique email or license index
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	user.ClearEvents()

	token, expires, err := i.tokens.Issue(user.Principal())
	if err != nil {
		return nil, err
	}
	return &contracts.Session{User: user, Token: token, ExpiresAt: expires}, nil
}
