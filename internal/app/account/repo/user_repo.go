package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/account/contracts"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// UserRepo implements UserRepository for Spanner.
type UserRepo struct {
	client *spanner.Client
	model  *m_user.Model
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *spanner.Client) contracts.UserRepository {
	return &UserRepo{
		client: client,
		model:  m_user.NewModel(),
	}
}

// InsertMut creates a mutation for a new user.
func (r *UserRepo) InsertMut(u *domain.User) (*spanner.Mutation, error) {
	data, err := userToData(u)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for the dirty fields only.
func (r *UserRepo) UpdateMut(u *domain.User) (*spanner.Mutation, error) {
	changes := u.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_user.Name] = u.Name()
	}
	if changes.Dirty(domain.FieldPhone) {
		updates[m_user.Phone] = nullString(u.Phone())
	}
	if changes.Dirty(domain.FieldPasswordHash) {
		updates[m_user.PasswordHash] = u.PasswordHash()
	}

	if p := u.AgentProfile(); p != nil {
		if changes.Dirty(domain.FieldAgentProfile) {
			cols, err := agentColumns(p)
			if err != nil {
				return nil, err
			}
			for col, val := range cols {
				updates[col] = val
			}
		}
		if changes.Dirty(domain.FieldRating) {
			updates[m_user.RatingAverage] = p.Rating.Average
			updates[m_user.RatingCount] = p.Rating.Count
		}
		if changes.Dirty(domain.FieldVerified) {
			updates[m_user.Verified] = p.Verified
		}
	}

	return r.model.UpdateMut(u.ID(), updates), nil
}

// GetByID retrieves a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.Columns)
	return r.fromRow(row, err)
}

// GetForUpdate reads the user inside txn so the commit fails on concurrent writes.
func (r *UserRepo) GetForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, userID string) (*domain.User, error) {
	row, err := txn.ReadRow(ctx, m_user.TableName, spanner.Key{userID}, m_user.Columns)
	return r.fromRow(row, err)
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.Columns...).
		Where(query.Eq(m_user.Email, email)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	return r.fromRow(row, err)
}

// EmailExists reports whether email is registered.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.lookup(ctx, m_user.Email, email)
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LicenseHolder returns the user holding license.
func (r *UserRepo) LicenseHolder(ctx context.Context, license string) (string, bool, error) {
	id, err := r.lookup(ctx, m_user.LicenseNumber, license)
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// lookup returns the user id matching column = value, or iterator.Done.
func (r *UserRepo) lookup(ctx context.Context, column, value string) (string, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.UserID).
		Where(query.Eq(column, value)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to query users: %w", err)
	}
	var id string
	if err := row.Columns(&id); err != nil {
		return "", fmt.Errorf("failed to scan user id: %w", err)
	}
	return id, nil
}

func (r *UserRepo) fromRow(row *spanner.Row, err error) (*domain.User, error) {
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return dataToUser(&data)
}
