package login

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
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewHasher(4)
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	tokens := auth.NewTokenManager("test-secret", time.Hour, clk)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	active := accounttest.User("u1", "ravi@example.com", hash)
	disabled := domain.ReconstructUser(domain.UserSnapshot{ID: "u2", Email: "off@example.com", PasswordHash: hash, Role: auth.RoleUser})

	uc := NewInteractor(accounttest.NewUsers(active, disabled), hasher, tokens)

	t.Run("valid credentials", func(t *testing.T) {
		s, err := uc.Execute(ctx, &Request{Email: " Ravi@example.com ", Password: "secret1"})
		require.NoError(t, err)
		p, err := tokens.Verify(s.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", p.UserID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{Email: "ravi@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

		_, err = uc.Execute(ctx, &Request{Email: "who@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{Email: "off@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrAccountDisabled)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{})
		v, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Len(t, v.Fields, 2)
	})
}
