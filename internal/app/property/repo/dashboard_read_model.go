package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property_inquiry"
)

// recentPropertyCount is how many recently updated listings feed the
// recent-inquiries list.
const recentPropertyCount = 5

// DashboardReadModel implements contracts.DashboardReadModel for Spanner.
type DashboardReadModel struct {
	client *spanner.Client
}

// NewDashboardReadModel creates a new DashboardReadModel.
func NewDashboardReadModel(client *spanner.Client) contracts.DashboardReadModel {
	return &DashboardReadModel{client: client}
}

// AgentDashboard reads all aggregates in one snapshot.
func (rm *DashboardReadModel) AgentDashboard(ctx context.Context, agentID string) (domain.Dashboard, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	buckets, err := statusBuckets(ctx, txn, agentID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	totalInquiries, err := countRows(ctx, txn, spanner.Statement{
		SQL: `SELECT COUNT(*) FROM property_inquiries i
			JOIN properties p ON p.property_id = i.property_id
			WHERE p.agent_id = @agent`,
		Params: map[string]interface{}{"agent": agentID},
	})
	if err != nil {
		return domain.Dashboard{}, err
	}

	recent, err := recentInquiries(ctx, txn, agentID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.BuildDashboard(buckets, totalInquiries, recent), nil
}

func statusBuckets(ctx context.Context, txn *spanner.ReadOnlyTransaction, agentID string) ([]domain.StatusBucket, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: `SELECT status, COUNT(*) AS n, COALESCE(SUM(views), 0) AS v
			FROM properties WHERE agent_id = @agent GROUP BY status`,
		Params: map[string]interface{}{"agent": agentID},
	})
	defer iter.Stop()

	var out []domain.StatusBucket
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read status counts: %w", err)
		}
		var (
			status string
			b      domain.StatusBucket
		)
		if err := row.Columns(&status, &b.Count, &b.Views); err != nil {
			return nil, fmt.Errorf("failed to scan status counts: %w", err)
		}
		b.Status = domain.Status(status)
		out = append(out, b)
	}
}

// recentInquiries returns the inquiry lists of the most recently updated listings.
func recentInquiries(ctx context.Context, txn *spanner.ReadOnlyTransaction, agentID string) ([][]domain.Inquiry, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: `SELECT i.property_id, i.inquiry_id, i.user_id, i.name, i.email, i.phone, i.message, i.created_at
			FROM property_inquiries i
			WHERE i.property_id IN (
				SELECT property_id FROM properties WHERE agent_id = @agent
				ORDER BY updated_at DESC LIMIT @recent)
			ORDER BY i.property_id`,
		Params: map[string]interface{}{"agent": agentID, "recent": int64(recentPropertyCount)},
	})
	defer iter.Stop()

	byProperty := make(map[string][]domain.Inquiry)
	order := make([]string, 0, recentPropertyCount)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read inquiries: %w", err)
		}
		var data m_property_inquiry.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse inquiry: %w", err)
		}
		if _, ok := byProperty[data.PropertyID]; !ok {
			order = append(order, data.PropertyID)
		}
		byProperty[data.PropertyID] = append(byProperty[data.PropertyID], inquiryFromData(&data))
	}

	lists := make([][]domain.Inquiry, 0, len(order))
	for _, id := range order {
		lists = append(lists, byProperty[id])
	}
	return lists, nil
}
