package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/pkg/outbox"
)

// OutboxRepository turns domain events into outbox mutations.
type OutboxRepository interface {
	InsertMut(event outbox.Event) (*spanner.Mutation, error)
}
