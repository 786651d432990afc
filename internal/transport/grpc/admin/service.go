package admin

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "estate.admin.v1.AdminService"

const (
	getSiteStatsMethod      = "/" + ServiceName + "/GetSiteStats"
	getAgentDashboardMethod = "/" + ServiceName + "/GetAgentDashboard"
)

// AdminServer is the server API for the admin service. Replies are
// google.protobuf.Struct documents carrying the same JSON the REST API returns.
type AdminServer interface {
	GetSiteStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetAgentDashboard takes the agent id. An empty value means the caller.
	GetAgentDashboard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc is built on well-known types only, so no generated code is needed.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSiteStats", Handler: getSiteStatsHandler},
		{MethodName: "GetAgentDashboard", Handler: getAgentDashboardHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "estate/admin/v1/admin.proto",
}

func RegisterAdminServer(s grpc.ServiceRegistrar, srv AdminServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func getSiteStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetSiteStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getSiteStatsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetSiteStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getAgentDashboardHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetAgentDashboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getAgentDashboardMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetAgentDashboard(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls the admin service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) GetSiteStats(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getSiteStatsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAgentDashboard(ctx context.Context, agentID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getAgentDashboardMethod, wrapperspb.String(agentID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
