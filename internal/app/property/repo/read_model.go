package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProperty retrieves a property DTO by ID.
func (rm *ReadModelImpl) GetProperty(ctx context.Context, propertyID string) (*contracts.PropertyDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_property.TableName, spanner.Key{propertyID}, m_property.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to read property: %w", err)
	}

	var data m_property.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse property: %w", err)
	}

	dtos, err := rm.hydrate(ctx, txn, []*m_property.Data{&data})
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

// ListProperties runs the count and the page query in one snapshot.
func (rm *ReadModelImpl) ListProperties(ctx context.Context, q contracts.ListQuery) ([]*contracts.PropertyDTO, int64, error) {
	base := query.From(m_property.TableName).
		Select(m_property.Columns...).
		WhereAll(q.Conditions)

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := countRows(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	stmt := base.
		OrderByTerms(q.Orders).
		Limit(q.Page.Limit()).
		Offset(q.Page.Offset()).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*m_property.Data, 0, q.Page.Size)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate properties: %w", err)
		}

		var data m_property.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to parse property: %w", err)
		}
		rows = append(rows, &data)
	}

	dtos, err := rm.hydrate(ctx, txn, rows)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

// hydrate attaches images and agent summaries to a batch of rows.
func (rm *ReadModelImpl) hydrate(ctx context.Context, txn *spanner.ReadOnlyTransaction, rows []*m_property.Data) ([]*contracts.PropertyDTO, error) {
	ids := make([]string, 0, len(rows))
	agentIDs := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PropertyID)
		agentIDs = append(agentIDs, r.AgentID)
	}

	images, err := readImagesFor(ctx, txn, ids)
	if err != nil {
		return nil, err
	}
	agents, err := readAgentSummaries(ctx, txn, agentIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*contracts.PropertyDTO, 0, len(rows))
	for _, r := range rows {
		dto := dataToDTO(r, images[r.PropertyID])
		if a, ok := agents[r.AgentID]; ok {
			dto.Agent = a
		}
		out = append(out, dto)
	}
	return out, nil
}

func readAgentSummaries(ctx context.Context, txn *spanner.ReadOnlyTransaction, agentIDs []string) (map[string]contracts.AgentSummary, error) {
	out := make(map[string]contracts.AgentSummary)
	if len(agentIDs) == 0 {
		return out, nil
	}

	keys := make([]spanner.Key, 0, len(agentIDs))
	seen := make(map[string]bool)
	for _, id := range agentIDs {
		if !seen[id] {
			seen[id] = true
			keys = append(keys, spanner.Key{id})
		}
	}

	iter := txn.Read(ctx, m_user.TableName, spanner.KeySetFromKeys(keys...), []string{
		m_user.UserID,
		m_user.Name,
		m_user.Email,
		m_user.Phone,
		m_user.RatingAverage,
		m_user.Verified,
	})
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read agents: %w", err)
		}

		var (
			a     contracts.AgentSummary
			phone spanner.NullString
		)
		if err := row.Columns(&a.ID, &a.Name, &a.Email, &phone, &a.Rating, &a.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		a.Phone = phone.StringVal
		out[a.ID] = a
	}
	return out, nil
}

func countRows(ctx context.Context, rd rowReader, stmt spanner.Statement) (int64, error) {
	iter := rd.Query(ctx, stmt)
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
