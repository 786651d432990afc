package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
)

// PriceHistoryRepository defines the interface for price history persistence.
type PriceHistoryRepository interface {
	// InsertMut records a price change. change.Old is nil for the initial price.
	InsertMut(historyID, propertyID string, change *domain.PriceChange, changedBy string) *spanner.Mutation

	// ListByProperty returns the newest changes first.
	ListByProperty(ctx context.Context, propertyID string, limit int) ([]PriceHistoryRecord, error)
}

// PriceHistoryRecord represents a price change record.
type PriceHistoryRecord struct {
	HistoryID string        `json:"id"`
	OldAmount *domain.Money `json:"oldAmount"`
	NewAmount *domain.Money `json:"newAmount"`
	Currency  string        `json:"currency"`
	ChangedBy string        `json:"changedBy,omitempty"`
	ChangedAt time.Time     `json:"changedAt"`
}
