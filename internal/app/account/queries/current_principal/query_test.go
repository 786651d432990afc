package current_principal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/account/accounttest"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

func TestPrincipal(t *testing.T) {
	q := NewQuery(accounttest.NewUsers(
		accounttest.Agent("agent-1", "a1@example.com", "LIC-1", domain.Rating{}),
		domain.ReconstructUser(domain.UserSnapshot{ID: "off-1", Email: "off@example.com", Role: auth.RoleAdmin}),
	))
	ctx := context.Background()

	t.Run("active account", func(t *testing.T) {
		p, err := q.Principal(ctx, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}, p)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := q.Principal(ctx, "ghost")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("inactive account", func(t *testing.T) {
		_, err := q.Principal(ctx, "off-1")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}
