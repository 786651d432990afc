package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut stages one event row. created_at is always the commit timestamp
// and an empty status defaults to pending.
func (m *Model) InsertMut(data *Data) (*spanner.Mutation, error) {
	row := *data
	row.CreatedAt = spanner.CommitTimestamp
	if row.Status == "" {
		row.Status = StatusPending
	}
	return spanner.InsertStruct(TableName, &row)
}
