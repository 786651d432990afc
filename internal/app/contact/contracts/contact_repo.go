package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/outbox"
)

// ContactRepository defines the interface for contact persistence.
type ContactRepository interface {
	InsertMut(c *domain.Contact) *spanner.Mutation
	// UpdateMut returns nil when nothing is dirty.
	UpdateMut(c *domain.Contact) *spanner.Mutation
	DeleteMut(contactID string) *spanner.Mutation
	NoteInsertMut(contactID string, note domain.Note) *spanner.Mutation
	GetByID(ctx context.Context, contactID string) (*domain.Contact, error)
}

// OutboxRepository defines the interface for outbox event persistence.
type OutboxRepository interface {
	InsertMut(event outbox.Event) (*spanner.Mutation, error)
}
