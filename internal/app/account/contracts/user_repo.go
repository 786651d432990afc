package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/outbox"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	InsertMut(user *domain.User) (*spanner.Mutation, error)

	// UpdateMut writes the dirty fields; nil when nothing changed.
	UpdateMut(user *domain.User) (*spanner.Mutation, error)

	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail looks up a normalized address through the unique email index.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)

	// LicenseHolder returns the id of the user holding license, if any.
	LicenseHolder(ctx context.Context, license string) (string, bool, error)

	// GetForUpdate reads the user inside a read-write transaction.
	GetForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, userID string) (*domain.User, error)
}

// OutboxRepository turns domain events into outbox mutations.
type OutboxRepository interface {
	InsertMut(event outbox.Event) (*spanner.Mutation, error)
}
