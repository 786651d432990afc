package agent_dashboard

import (
	"context"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Request identifies the agent whose dashboard is read.
type Request struct {
	Caller auth.Principal
	// AgentID defaults to the caller. Only admins may read another agent's dashboard.
	AgentID string
}

// Query reads the per-agent dashboard.
type Query struct {
	readModel contracts.DashboardReadModel
}

// NewQuery creates a new agent dashboard query.
func NewQuery(readModel contracts.DashboardReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute is read-only.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.Dashboard, error) {
	agentID := req.AgentID
	if agentID == "" {
		agentID = req.Caller.UserID
	}
	if !req.Caller.CanList() || !req.Caller.Owns(agentID) {
		return domain.Dashboard{}, domain.ErrNotAgent
	}
	return q.readModel.AgentDashboard(ctx, agentID)
}
