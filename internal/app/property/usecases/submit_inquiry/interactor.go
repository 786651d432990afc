package submit_inquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
)

// Request is an inquiry about a listing. Caller is nil for anonymous senders.
type Request struct {
	PropertyID string
	Caller     *auth.Principal
	Name       string
	Email      string
	Phone      string
	Message    string
}

// Interactor handles the submit inquiry use case.
type Interactor struct {
	repo        contracts.PropertyRepository
	inquiryRepo contracts.InquiryRepository
	outboxRepo  contracts.OutboxRepository
	committer   committer.Applier
	clock       clock.Clock
}

// NewInteractor creates a new submit inquiry interactor.
func NewInteractor(
	repo contracts.PropertyRepository,
	inquiryRepo contracts.InquiryRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:        repo,
		inquiryRepo: inquiryRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute stores the inquiry. Only active listings accept inquiries from
// callers that don't own them.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Inquiry, error) {
	property, err := i.repo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	var userID string
	if req.Caller != nil {
		userID = req.Caller.UserID
	}
	if !property.IsPublic() && (req.Caller == nil || !req.Caller.Owns(property.AgentID())) {
		return nil, domain.ErrPropertyNotFound
	}

	now := i.clock.Now()
	inquiry, err := domain.NewInquiry(uuid.New().String(), property.ID(), userID,
		req.Name, req.Email, req.Phone, req.Message, now)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.inquiryRepo.InsertMut(inquiry))

	mut, err := i.outboxRepo.InsertMut(&domain.InquirySubmittedEvent{
		PropertyID:  property.ID(),
		InquiryID:   inquiry.ID,
		SubmittedAt: now,
	})
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inquiry, nil
}
