package register

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/account/accounttest"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestRegister(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	tokens := auth.NewTokenManager("test-secret", time.Hour, clk)

	setup := func(existing ...*domain.User) (*accounttest.Users, *testutil.Outbox, *Interactor) {
		users := accounttest.NewUsers(existing...)
		ob := &testutil.Outbox{}
		return users, ob, NewInteractor(users, ob, auth.NewHasher(4), tokens, &testutil.Applier{}, clk)
	}

	t.Run("plain user gets a token", func(t *testing.T) {
		users, ob, uc := setup()
		s, err := uc.Execute(ctx, &domain.Registration{Name: "Ravi", Email: "Ravi@Example.com", Password: "secret1"})
		require.NoError(t, err)

		require.Len(t, users.Inserted, 1)
		assert.Equal(t, "ravi@example.com", s.User.Email())
		assert.NotEqual(t, "secret1", s.User.PasswordHash())
		assert.Equal(t, []string{"user.registered"}, ob.Types())

		p, err := tokens.Verify(s.Token)
		require.NoError(t, err)
		assert.Equal(t, s.User.ID(), p.UserID)
		assert.Equal(t, auth.RoleUser, p.Role)
		assert.Equal(t, clk.Now().Add(time.Hour), s.ExpiresAt)
	})

	t.Run("agent registration", func(t *testing.T) {
		_, _, uc := setup()
		s, err := uc.Execute(ctx, &domain.Registration{
			Name: "Meera", Email: "meera@example.com", Password: "secret1",
			Agent: &domain.AgentProfileInput{LicenseNumber: ptr("LIC-1")},
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAgent, s.User.Role())
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, uc := setup(accounttest.User("u1", "ravi@example.com", "x"))
		_, err := uc.Execute(ctx, &domain.Registration{Name: "Ravi", Email: " RAVI@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("duplicate license", func(t *testing.T) {
		_, _, uc := setup(accounttest.Agent("a1", "a1@example.com", "LIC-1", domain.Rating{}))
		_, err := uc.Execute(ctx, &domain.Registration{
			Name: "Meera", Email: "meera@example.com", Password: "secret1",
			Agent: &domain.AgentProfileInput{LicenseNumber: ptr("LIC-1")},
		})
		assert.ErrorIs(t, err, domain.ErrLicenseTaken)
	})

	t.Run("short password", func(t *testing.T) {
		users, _, uc := setup()
		_, err := uc.Execute(ctx, &domain.Registration{Name: "Ravi", Email: "ravi@example.com", Password: "12345"})
		v, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields, "password")
		assert.Empty(t, users.Inserted)
	})
}
