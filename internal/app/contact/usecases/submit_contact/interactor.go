package submit_contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Interactor handles public contact form submissions.
type Interactor struct {
	repo       contracts.ContactRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new submit contact interactor.
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

func (i *Interactor) Execute(ctx context.Context, req *domain.Submission) (*domain.Contact, error) {
	contact, err := domain.NewContact(uuid.New().String(), *req, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer contact.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(contact))

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
