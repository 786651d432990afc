// Package outbox turns domain events into outbox_events rows that are written
// in the same commit as the change that produced them.
package outbox

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/estate-service/internal/models/m_outbox"
)

// Event is implemented by every domain event.
type Event interface {
	EventType() string
	AggregateID() string
}

// Writer builds outbox mutations.
type Writer struct {
	model *m_outbox.Model
	newID func() string
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{
		model: m_outbox.NewModel(),
		newID: func() string { return uuid.New().String() },
	}
}

// InsertMut serializes one event into an insert mutation.
func (w *Writer) InsertMut(event Event) (*spanner.Mutation, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s event: %w", event.EventType(), err)
	}

	mut, err := w.model.InsertMut(&m_outbox.Data{
		EventID:     w.newID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     spanner.NullJSON{Value: json.RawMessage(payload), Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s outbox row: %w", event.EventType(), err)
	}
	return mut, nil
}

// InsertMuts serializes events in order.
func (w *Writer) InsertMuts(events []Event) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(events))
	for _, e := range events {
		mut, err := w.InsertMut(e)
		if err != nil {
			return nil, err
		}
		muts = append(muts, mut)
	}
	return muts, nil
}
