package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_price_history"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// PriceHistoryRepo implements PriceHistoryRepository for Spanner.
type PriceHistoryRepo struct {
	client *spanner.Client
	model  *m_price_history.Model
}

// NewPriceHistoryRepo creates a new price history repository.
func NewPriceHistoryRepo(client *spanner.Client) contracts.PriceHistoryRepository {
	return &PriceHistoryRepo{
		client: client,
		model:  m_price_history.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a price change record.
func (r *PriceHistoryRepo) InsertMut(historyID, propertyID string, change *domain.PriceChange, changedBy string) *spanner.Mutation {
	data := &m_price_history.Data{
		PropertyID: propertyID,
		HistoryID:  historyID,
		NewAmount:  spanner.NullNumeric{Numeric: *change.New.Rat(), Valid: true},
		Currency:   change.Currency,
		ChangedBy:  nullString(changedBy),
	}
	if change.Old != nil {
		data.OldAmount = spanner.NullNumeric{Numeric: *change.Old.Rat(), Valid: true}
	}
	return r.model.InsertMut(data)
}

// ListByProperty retrieves price history, most recent first.
func (r *PriceHistoryRepo) ListByProperty(ctx context.Context, propertyID string, limit int) ([]contracts.PriceHistoryRecord, error) {
	stmt := query.From(m_price_history.TableName).
		Select(m_price_history.Columns...).
		Where(query.Eq(m_price_history.PropertyID, propertyID)).
		OrderBy(m_price_history.ChangedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var records []contracts.PriceHistoryRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query price history: %w", err)
		}

		var data m_price_history.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price history: %w", err)
		}

		rec := contracts.PriceHistoryRecord{
			HistoryID: data.HistoryID,
			NewAmount: domain.NewMoneyFromRat(&data.NewAmount.Numeric),
			Currency:  data.Currency,
			ChangedBy: data.ChangedBy.StringVal,
			ChangedAt: data.ChangedAt,
		}
		if data.OldAmount.Valid {
			rec.OldAmount = domain.NewMoneyFromRat(&data.OldAmount.Numeric)
		}
		records = append(records, rec)
	}

	return records, nil
}
