package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/admin/contracts"
	"github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/models/m_property_inquiry"
	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// StatsReadModel implements contracts.StatsReadModel for Spanner.
type StatsReadModel struct {
	client *spanner.Client
}

// NewStatsReadModel creates a new StatsReadModel.
func NewStatsReadModel(client *spanner.Client) contracts.StatsReadModel {
	return &StatsReadModel{client: client}
}

// Counts runs every grouped count in one read-only snapshot.
func (rm *StatsReadModel) Counts(ctx context.Context) (domain.Counts, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	var (
		c   domain.Counts
		err error
	)
	if c.PropertiesByStatus, err = groupCount(ctx, txn, m_property.TableName, m_property.Status); err != nil {
		return c, err
	}
	if c.PropertiesByType, err = groupCount(ctx, txn, m_property.TableName, m_property.PropertyType); err != nil {
		return c, err
	}
	if c.UsersByRole, err = groupCount(ctx, txn, m_user.TableName, m_user.Role); err != nil {
		return c, err
	}
	if c.ContactsByStatus, err = groupCount(ctx, txn, m_contact.TableName, m_contact.Status); err != nil {
		return c, err
	}

	if c.VerifiedAgents, c.UnverifiedAgents, err = agentVerification(ctx, txn); err != nil {
		return c, err
	}

	if c.TotalViews, err = scalar(ctx, txn, spanner.Statement{
		SQL: fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s", m_property.Views, m_property.TableName),
	}); err != nil {
		return c, err
	}
	if c.TotalInquiries, err = scalar(ctx, txn, query.From(m_property_inquiry.TableName).Count().Build()); err != nil {
		return c, err
	}
	return c, nil
}

func groupCount(ctx context.Context, txn *spanner.ReadOnlyTransaction, table, column string) (map[string]int64, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s", column, table, column),
	})
	defer iter.Stop()

	out := make(map[string]int64)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count %s by %s: %w", table, column, err)
		}
		var (
			key string
			n   int64
		)
		if err := row.Columns(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan %s counts: %w", table, err)
		}
		out[key] = n
	}
}

func agentVerification(ctx context.Context, txn *spanner.ReadOnlyTransaction) (verified, unverified int64, err error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s, COUNT(*) FROM %s WHERE %s = true GROUP BY %s",
			m_user.Verified, m_user.TableName, m_user.IsAgent, m_user.Verified),
	})
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return verified, unverified, nil
		}
		if err != nil {
			return 0, 0, fmt.Errorf("failed to count agents: %w", err)
		}
		var (
			v bool
			n int64
		)
		if err := row.Columns(&v, &n); err != nil {
			return 0, 0, fmt.Errorf("failed to scan agent counts: %w", err)
		}
		if v {
			verified = n
		} else {
			unverified = n
		}
	}
}

func scalar(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read aggregate: %w", err)
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, fmt.Errorf("failed to scan aggregate: %w", err)
	}
	return n, nil
}
