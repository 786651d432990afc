package agent_dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

type fakeDashboards struct {
	agentID string
}

func (f *fakeDashboards) AgentDashboard(_ context.Context, agentID string) (domain.Dashboard, error) {
	f.agentID = agentID
	return domain.BuildDashboard(nil, 0, nil), nil
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("agent reads own dashboard", func(t *testing.T) {
		rm := &fakeDashboards{}
		d, err := NewQuery(rm).Execute(ctx, &Request{Caller: auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}})
		require.NoError(t, err)
		assert.Equal(t, "agent-1", rm.agentID)
		assert.Len(t, d.StatusCounts, len(domain.Statuses))
	})

	t.Run("admin reads any dashboard", func(t *testing.T) {
		rm := &fakeDashboards{}
		_, err := NewQuery(rm).Execute(ctx, &Request{
			Caller:  auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin},
			AgentID: "agent-2",
		})
		require.NoError(t, err)
		assert.Equal(t, "agent-2", rm.agentID)
	})

	t.Run("agent cannot read another agent", func(t *testing.T) {
		_, err := NewQuery(&fakeDashboards{}).Execute(ctx, &Request{
			Caller:  auth.Principal{UserID: "agent-1", Role: auth.RoleAgent},
			AgentID: "agent-2",
		})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("plain user", func(t *testing.T) {
		_, err := NewQuery(&fakeDashboards{}).Execute(ctx, &Request{Caller: auth.Principal{UserID: "u", Role: auth.RoleUser}})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}
