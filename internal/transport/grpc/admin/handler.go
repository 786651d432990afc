package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/estate-service/internal/app/admin/queries/site_stats"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_dashboard"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// Handler implements AdminServer.
// It's a thin coordinator that delegates to the queries.
type Handler struct {
	siteStats *site_stats.Query
	dashboard *agent_dashboard.Query
}

// NewHandler creates a new gRPC admin handler.
func NewHandler(siteStats *site_stats.Query, dashboard *agent_dashboard.Query) *Handler {
	return &Handler{siteStats: siteStats, dashboard: dashboard}
}

var _ AdminServer = (*Handler)(nil)

func (h *Handler) GetSiteStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	p, _ := auth.FromContext(ctx)
	stats, err := h.siteStats.Execute(ctx, p)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(stats)
}

func (h *Handler) GetAgentDashboard(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	p, _ := auth.FromContext(ctx)
	dash, err := h.dashboard.Execute(ctx, &agent_dashboard.Request{Caller: p, AgentID: req.GetValue()})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(dash)
}

// toStruct round-trips v through JSON so the reply matches the REST body.
func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, mapDomainErrorToGRPC(fmt.Errorf("failed to encode reply: %w", err))
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, mapDomainErrorToGRPC(fmt.Errorf("failed to decode reply: %w", err))
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, mapDomainErrorToGRPC(fmt.Errorf("failed to build reply: %w", err))
	}
	return s, nil
}
