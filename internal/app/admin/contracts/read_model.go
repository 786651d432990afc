package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// StatsReadModel reads the grouped counts behind the site statistics.
type StatsReadModel interface {
	Counts(ctx context.Context) (domain.Counts, error)
}

// EventDTO is one outbox row.
type EventDTO struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	AggregateID  string      `json:"aggregateId"`
	Payload      interface{} `json:"payload,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	ProcessedAt  *time.Time  `json:"processedAt,omitempty"`
	RetryCount   int64       `json:"retryCount"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type EventsQuery struct {
	Conditions []query.Condition
	Page       paging.Page
}

// EventsReadModel lists outbox events, newest first.
type EventsReadModel interface {
	ListEvents(ctx context.Context, q EventsQuery) ([]*EventDTO, int64, error)
}
