// Package accounttest provides in-memory fakes of the account contracts.
package accounttest

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Users is an in-memory UserRepository.
type Users struct {
	mu       sync.Mutex
	ByID     map[string]*domain.User
	Inserted []*domain.User
	Updated  []*domain.User
}

func NewUsers(users ...*domain.User) *Users {
	r := &Users{ByID: map[string]*domain.User{}}
	for _, u := range users {
		r.ByID[u.ID()] = u
	}
	return r
}

func (r *Users) InsertMut(u *domain.User) (*spanner.Mutation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inserted = append(r.Inserted, u)
	r.ByID[u.ID()] = u
	return spanner.Delete("users", spanner.Key{u.ID()}), nil
}

func (r *Users) UpdateMut(u *domain.User) (*spanner.Mutation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !u.Changes().HasChanges() {
		return nil, nil
	}
	r.Updated = append(r.Updated, u)
	return spanner.Delete("users", spanner.Key{u.ID()}), nil
}

func (r *Users) GetByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.ByID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *Users) GetForUpdate(ctx context.Context, _ *spanner.ReadWriteTransaction, userID string) (*domain.User, error) {
	return r.GetByID(ctx, userID)
}

func (r *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.ByID {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *Users) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *Users) LicenseHolder(_ context.Context, license string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.ByID {
		if p := u.AgentProfile(); p != nil && p.LicenseNumber == license {
			return u.ID(), true, nil
		}
	}
	return "", false, nil
}

// Agent returns a stored, active agent without pending events.
func Agent(id, email, license string, rating domain.Rating) *domain.User {
	return domain.ReconstructUser(domain.UserSnapshot{
		ID:     id,
		Name:   "Agent " + id,
		Email:  email,
		Role:   auth.RoleAgent,
		Active: true,
		Agent:  &domain.AgentProfile{LicenseNumber: license, Rating: rating},
	})
}

// User returns a stored plain user with the given password hash.
func User(id, email, passwordHash string) *domain.User {
	return domain.ReconstructUser(domain.UserSnapshot{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         auth.RoleUser,
		Active:       true,
	})
}
