package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	m := NewTokenManager("test-secret", time.Hour, clk)

	token, expires, err := m.Issue(Principal{UserID: "user-1", Role: RoleAgent})
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expires)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: "user-1", Role: RoleAgent}, p)
}

func TestTokenManager_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	m := NewTokenManager("test-secret", time.Hour, clk)

	token, _, err := m.Issue(Principal{UserID: "user-1", Role: RoleUser})
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestTokenManager_Rejects(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	m := NewTokenManager("test-secret", time.Hour, clk)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour, clk)
		token, _, _ := other.Issue(Principal{UserID: "user-1", Role: RoleUser})

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			UserID: "user-1",
			Role:   "root",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestPrincipal(t *testing.T) {
	agent := Principal{UserID: "a-1", Role: RoleAgent}
	admin := Principal{UserID: "admin", Role: RoleAdmin}
	user := Principal{UserID: "u-1", Role: RoleUser}

	assert.True(t, agent.Owns("a-1"))
	assert.False(t, agent.Owns("a-2"))
	assert.True(t, admin.Owns("a-2"))
	assert.False(t, Principal{}.Owns(""))

	assert.True(t, agent.CanList())
	assert.True(t, admin.CanList())
	assert.False(t, user.CanList())

	ctx := WithPrincipal(context.Background(), agent)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, agent, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
