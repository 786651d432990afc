package admin

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	admindomain "github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/app/admin/queries/site_stats"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_dashboard"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
)

type fakeStats struct{}

func (fakeStats) Counts(context.Context) (admindomain.Counts, error) {
	return admindomain.Counts{
		UsersByRole: map[string]int64{"user": 4, "agent": 2},
		TotalViews:  120,
	}, nil
}

type fakeDashboards struct {
	asked []string
}

func (f *fakeDashboards) AgentDashboard(_ context.Context, agentID string) (domain.Dashboard, error) {
	f.asked = append(f.asked, agentID)
	return domain.Dashboard{TotalProperties: 3, TotalViews: 40}, nil
}

// storedRoles stands in for the account lookup; ids it does not know are revoked.
type storedRoles map[string]auth.Role

func (s storedRoles) Principal(_ context.Context, userID string) (auth.Principal, error) {
	role, ok := s[userID]
	if !ok {
		return auth.Principal{}, apperr.Kind(apperr.ErrUnauthenticated, errors.New("account is no longer active"))
	}
	return auth.Principal{UserID: userID, Role: role}, nil
}

func startServer(t *testing.T, tokens *auth.TokenManager, lookup auth.Lookup, dashboards *fakeDashboards) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryAuth(tokens, lookup)))
	RegisterAdminServer(srv, NewHandler(site_stats.NewQuery(fakeStats{}), agent_dashboard.NewQuery(dashboards)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn)
}

func withToken(t *testing.T, tokens *auth.TokenManager, id string, role auth.Role) context.Context {
	t.Helper()
	token, _, err := tokens.Issue(auth.Principal{UserID: id, Role: role})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestAdminService(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour, clock.NewMockClock(time.Now()))
	dashboards := &fakeDashboards{}
	client := startServer(t, tokens, nil, dashboards)

	t.Run("site stats as admin", func(t *testing.T) {
		reply, err := client.GetSiteStats(withToken(t, tokens, "a-1", auth.RoleAdmin))
		require.NoError(t, err)

		fields := reply.AsMap()
		assert.Equal(t, float64(120), fields["totalViews"])
		users := fields["users"].(map[string]interface{})
		assert.Equal(t, float64(6), users["total"])
	})

	t.Run("site stats as agent", func(t *testing.T) {
		_, err := client.GetSiteStats(withToken(t, tokens, "ag-1", auth.RoleAgent))
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := client.GetSiteStats(context.Background())
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer junk")
		_, err := client.GetSiteStats(ctx)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("own dashboard", func(t *testing.T) {
		reply, err := client.GetAgentDashboard(withToken(t, tokens, "ag-1", auth.RoleAgent), "")
		require.NoError(t, err)
		assert.Equal(t, float64(3), reply.AsMap()["totalProperties"])
		assert.Equal(t, "ag-1", dashboards.asked[len(dashboards.asked)-1])
	})

	t.Run("another agent's dashboard", func(t *testing.T) {
		_, err := client.GetAgentDashboard(withToken(t, tokens, "ag-1", auth.RoleAgent), "ag-2")
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("admin reads any dashboard", func(t *testing.T) {
		_, err := client.GetAgentDashboard(withToken(t, tokens, "a-1", auth.RoleAdmin), "ag-2")
		require.NoError(t, err)
		assert.Equal(t, "ag-2", dashboards.asked[len(dashboards.asked)-1])
	})
}

func TestAdminServiceUsesStoredAccount(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour, clock.NewMockClock(time.Now()))
	client := startServer(t, tokens, storedRoles{"a-1": auth.RoleUser}, &fakeDashboards{})

	t.Run("demoted admin", func(t *testing.T) {
		_, err := client.GetSiteStats(withToken(t, tokens, "a-1", auth.RoleAdmin))
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("revoked account", func(t *testing.T) {
		_, err := client.GetSiteStats(withToken(t, tokens, "a-2", auth.RoleAdmin))
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
