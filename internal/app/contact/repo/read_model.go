package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// ReadModel implements contracts.ReadModel for Spanner.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// ListContacts returns one page, newest first, and the match count.
func (rm *ReadModel) ListContacts(ctx context.Context, q contracts.ListQuery) ([]*contracts.ContactDTO, int64, error) {
	base := query.From(m_contact.TableName).
		Select(m_contact.Columns...).
		WhereAll(q.Conditions)

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := countRows(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	iter := txn.Query(ctx, base.
		OrderBy(m_contact.CreatedAt, query.Desc).
		Limit(q.Page.Limit()).
		Offset(q.Page.Offset()).
		Build())
	defer iter.Stop()

	out := make([]*contracts.ContactDTO, 0, q.Page.Size)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate contacts: %w", err)
		}
		var data m_contact.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to parse contact: %w", err)
		}
		out = append(out, dtoFromData(&data))
	}
	return out, total, nil
}

// Stats counts submissions per status, category and priority.
func (rm *ReadModel) Stats(ctx context.Context) (*contracts.Stats, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	stats := &contracts.Stats{}
	var err error
	if stats.ByStatus, err = groupCount(ctx, txn, m_contact.Status); err != nil {
		return nil, err
	}
	if stats.ByCategory, err = groupCount(ctx, txn, m_contact.Category); err != nil {
		return nil, err
	}
	if stats.ByPriority, err = groupCount(ctx, txn, m_contact.Priority); err != nil {
		return nil, err
	}
	for _, n := range stats.ByStatus {
		stats.Total += n
	}

	stats.Unread, err = countRows(ctx, txn, query.From(m_contact.TableName).
		Where(query.Eq(m_contact.IsRead, false)).
		Count().
		Build())
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func groupCount(ctx context.Context, txn *spanner.ReadOnlyTransaction, column string) (map[string]int64, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s", column, m_contact.TableName, column),
	})
	defer iter.Stop()

	out := make(map[string]int64)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count contacts by %s: %w", column, err)
		}
		var (
			key string
			n   int64
		)
		if err := row.Columns(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan contact counts: %w", err)
		}
		out[key] = n
	}
}

func countRows(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, fmt.Errorf("failed to scan count: %w", err)
	}
	return n, nil
}
