package m_price_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a price history record in the database.
type Data struct {
	PropertyID string              `spanner:"property_id"`
	HistoryID  string              `spanner:"history_id"`
	OldAmount  spanner.NullNumeric `spanner:"old_amount"`
	NewAmount  spanner.NullNumeric `spanner:"new_amount"`
	Currency   string              `spanner:"currency"`
	ChangedBy  spanner.NullString  `spanner:"changed_by"`
	ChangedAt  time.Time           `spanner:"changed_at"`
}

// Model provides type-safe database operations for price history.
type Model struct{}

// NewModel creates a new price history model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a price history record.
// changed_at is the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.PropertyID,
			data.HistoryID,
			data.OldAmount,
			data.NewAmount,
			data.Currency,
			data.ChangedBy,
			spanner.CommitTimestamp,
		},
	)
}
