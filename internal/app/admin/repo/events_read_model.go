package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/admin/contracts"
	"github.com/light-bringer/estate-service/internal/models/m_outbox"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// EventsReadModel implements contracts.EventsReadModel for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) contracts.EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEvents returns one page of outbox events and the match count.
func (rm *EventsReadModel) ListEvents(ctx context.Context, q contracts.EventsQuery) ([]*contracts.EventDTO, int64, error) {
	base := query.From(m_outbox.TableName).
		Select(m_outbox.Columns...).
		WhereAll(q.Conditions)

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := scalar(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	iter := txn.Query(ctx, base.
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(q.Page.Limit()).
		Offset(q.Page.Offset()).
		Build())
	defer iter.Stop()

	events := make([]*contracts.EventDTO, 0, q.Page.Size)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, eventFromData(&data))
	}
	return events, total, nil
}

func eventFromData(d *m_outbox.Data) *contracts.EventDTO {
	e := &contracts.EventDTO{
		ID:           d.EventID,
		Type:         d.EventType,
		AggregateID:  d.AggregateID,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		RetryCount:   d.RetryCount,
		ErrorMessage: d.ErrorMessage.StringVal,
	}
	if d.Payload.Valid {
		e.Payload = d.Payload.Value
	}
	if d.ProcessedAt.Valid {
		t := d.ProcessedAt.Time
		e.ProcessedAt = &t
	}
	return e
}
