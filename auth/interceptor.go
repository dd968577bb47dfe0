package auth

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

// ServiceKey marks a context authenticated by a service key.
const ServiceKey contextKey = "service"

// AuthInterceptor guards the server-to-server gRPC surface.
// Callers present "authorization: Bearer <service key>"; the key is checked
// against its Argon2id hash. An empty hash locks every method.
func AuthInterceptor(log *slog.Logger, checker *KeyChecker) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is missing")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization key is missing")
		}

		key, ok := BearerToken(values[0])
		if !ok || !checker.Check(key) {
			log.Warn("Rejected gRPC call", "method", info.FullMethod)
			return nil, status.Error(codes.Unauthenticated, "invalid service key")
		}
		return handler(context.WithValue(ctx, ServiceKey, true), req)
	}
}
