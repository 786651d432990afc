package admin

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

// UnaryAuth verifies the bearer token in the "authorization" metadata and
// attaches the caller to the context. With a non-nil lookup the stored
// account replaces the token claims. Role checks are left to the queries.
func UnaryAuth(tokens *auth.TokenManager, lookup auth.Lookup) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !strings.HasPrefix(info.FullMethod, "/"+ServiceName+"/") {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		var raw string
		for _, v := range md.Get("authorization") {
			if strings.HasPrefix(v, "Bearer ") {
				raw = strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
				break
			}
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		p, err := tokens.Verify(raw)
		if err != nil {
			return nil, mapDomainErrorToGRPC(err)
		}
		if lookup != nil {
			if p, err = lookup.Principal(ctx, p.UserID); err != nil {
				return nil, mapDomainErrorToGRPC(err)
			}
		}
		return handler(auth.WithPrincipal(ctx, p), req)
	}
}
