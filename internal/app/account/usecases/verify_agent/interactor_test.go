package verify_agent

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

func TestVerifyAgent(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	setup := func() (*testutil.Outbox, *testutil.Applier, *Interactor) {
		users := accounttest.NewUsers(
			accounttest.Agent("a1", "a1@example.com", "LIC-1", domain.Rating{}),
			accounttest.User("u1", "u1@example.com", ""),
		)
		ob := &testutil.Outbox{}
		applier := &testutil.Applier{}
		return ob, applier, NewInteractor(users, ob, applier, clk)
	}

	t.Run("admin verifies", func(t *testing.T) {
		ob, applier, uc := setup()
		u, err := uc.Execute(ctx, &Request{Caller: admin, AgentID: "a1", Verified: true})
		require.NoError(t, err)
		assert.True(t, u.AgentProfile().Verified)
		assert.Equal(t, []string{"agent.verified"}, ob.Types())
		assert.Len(t, applier.Plans, 1)
	})

	t.Run("unchanged flag writes nothing", func(t *testing.T) {
		_, applier, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: admin, AgentID: "a1", Verified: false})
		require.NoError(t, err)
		assert.Empty(t, applier.Plans)
	})

	t.Run("agent cannot verify", func(t *testing.T) {
		_, _, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: auth.Principal{UserID: "a1", Role: auth.RoleAgent}, AgentID: "a1", Verified: true})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("target is not an agent", func(t *testing.T) {
		_, _, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: admin, AgentID: "u1", Verified: true})
		assert.ErrorIs(t, err, domain.ErrAgentNotFound)

		_, err = uc.Execute(ctx, &Request{Caller: admin, AgentID: "ghost", Verified: true})
		assert.ErrorIs(t, err, domain.ErrAgentNotFound)
	})
}
