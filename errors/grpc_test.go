package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid token", ErrInvalidToken, codes.Unauthenticated},
		{"wrapped disabled user", fmt.Errorf("verify: %w", ErrUserDisabled), codes.Unauthenticated},
		{"unknown kind", ErrUnknownKind, codes.InvalidArgument},
		{"reserved group", ErrReservedGroup, codes.PermissionDenied},
		{"unknown connection", ErrUnknownConnection, codes.NotFound},
		{"rate limited", ErrRateLimited, codes.ResourceExhausted},
		{"anything else", fmt.Errorf("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tt.err))
			req.True(ok)
			req.Equal(tt.want, st.Code())
		})
	}

	require.NoError(t, MapToGRPCError(nil))
}
