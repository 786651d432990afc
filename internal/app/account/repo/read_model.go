package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// activeStatus mirrors the property status that makes a listing public.
const activeStatus = "active"

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new account ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// GetUser returns any user by id.
func (rm *ReadModelImpl) GetUser(ctx context.Context, userID string) (*contracts.UserDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.PublicColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return toDTO(row)
}

// GetAgent returns an active agent and counts its active listings in the same snapshot.
func (rm *ReadModelImpl) GetAgent(ctx context.Context, agentID string) (*contracts.UserDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_user.TableName, spanner.Key{agentID}, m_user.PublicColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to read agent: %w", err)
	}
	dto, err := toDTO(row)
	if err != nil {
		return nil, err
	}
	if !dto.IsAgent || !dto.IsActive {
		return nil, domain.ErrAgentNotFound
	}

	stmt := query.From(m_property.TableName).
		Where(query.Eq(m_property.AgentID, agentID)).
		Where(query.Eq(m_property.Status, activeStatus)).
		Count().
		Build()
	n, err := countRows(ctx, txn, stmt)
	if err != nil {
		return nil, err
	}
	dto.ActiveListings = &n
	return dto, nil
}

// ListAgents runs the count and page query in one snapshot.
func (rm *ReadModelImpl) ListAgents(ctx context.Context, q contracts.ListQuery) ([]*contracts.UserDTO, int64, error) {
	base := query.From(m_user.TableName).
		Select(m_user.PublicColumns...).
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

	agents := make([]*contracts.UserDTO, 0, q.Page.Size)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to query agents: %w", err)
		}
		dto, err := toDTO(row)
		if err != nil {
			return nil, 0, err
		}
		agents = append(agents, dto)
	}
	return agents, total, nil
}

func toDTO(row *spanner.Row) (*contracts.UserDTO, error) {
	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	u, err := dataToUser(&data)
	if err != nil {
		return nil, err
	}
	return contracts.NewUserDTO(u), nil
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
