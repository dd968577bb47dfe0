package auth

import (
	"accelerator-hub/domain"
	"accelerator-hub/errors"
	"accelerator-hub/mocks"
	"accelerator-hub/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var secret = []byte("test-secret-with-enough-entropy-2026")

func mustToken(t *testing.T, identity domain.Identity, ttl time.Duration) string {
	t.Helper()
	token, err := GenerateToken(secret, identity, ttl)
	require.NoError(t, err)
	return token
}

func TestVerifier_Verify_WithoutDirectory(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	verifier := NewVerifier(log, secret, nil)
	mentor := domain.Identity{UserID: "u1", Role: domain.RoleMentor}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		User:             UserClaim{ID: "u1", Role: "mentor"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	otherSecret, err := GenerateToken([]byte("another-secret"), mentor, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    domain.Identity
		wantErr error
	}{
		{"valid token", mustToken(t, mentor, time.Hour), mentor, nil},
		{"surrounding blanks", "  " + mustToken(t, mentor, time.Hour) + " ", mentor, nil},
		{"missing token", "", domain.Identity{}, errors.ErrMissingToken},
		{"garbage", "not-a-jwt", domain.Identity{}, errors.ErrInvalidToken},
		{"expired", mustToken(t, mentor, -time.Minute), domain.Identity{}, errors.ErrInvalidToken},
		{"wrong secret", otherSecret, domain.Identity{}, errors.ErrInvalidToken},
		{"alg none", noneToken, domain.Identity{}, errors.ErrInvalidToken},
		{"unknown role", mustToken(t, domain.Identity{UserID: "u1", Role: "admin"}, time.Hour), domain.Identity{}, errors.ErrUnknownRole},
		{"empty subject", mustToken(t, domain.Identity{Role: domain.RoleMentor}, time.Hour), domain.Identity{}, errors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := verifier.Verify(context.Background(), tt.token)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.ErrorIs(err, errors.ErrAuthentication)
				req.Equal(domain.Identity{}, got)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestVerifier_Verify_WithDirectory(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	investor := domain.Identity{UserID: "u7", Role: domain.RoleInvestor}

	t.Run("known and enabled user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUser("u7").Return(repositories.User{ID: "u7", Role: domain.RoleInvestor}, nil).Times(1)

		got, err := NewVerifier(log, secret, users).Verify(context.Background(), mustToken(t, investor, time.Hour))
		req.NoError(err)
		req.Equal(investor, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUser("u7").Return(repositories.User{}, fmt.Errorf("%w: u7", errors.ErrUserNotFound)).Times(1)

		_, err := NewVerifier(log, secret, users).Verify(context.Background(), mustToken(t, investor, time.Hour))
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("disabled user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUser("u7").Return(repositories.User{ID: "u7", Role: domain.RoleInvestor, Disabled: true}, nil).Times(1)

		_, err := NewVerifier(log, secret, users).Verify(context.Background(), mustToken(t, investor, time.Hour))
		req.ErrorIs(err, errors.ErrUserDisabled)
	})

	t.Run("directory failure is an authentication failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUser("u7").Return(repositories.User{}, fmt.Errorf("disk on fire")).Times(1)

		_, err := NewVerifier(log, secret, users).Verify(context.Background(), mustToken(t, investor, time.Hour))
		req.ErrorIs(err, errors.ErrAuthentication)
	})

	t.Run("directory is not consulted for invalid tokens", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)

		_, err := NewVerifier(log, secret, users).Verify(context.Background(), "bogus")
		req.ErrorIs(err, errors.ErrInvalidToken)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := require.New(t)
			token, ok := BearerToken(tt.header)
			req.Equal(tt.ok, ok)
			req.Equal(tt.token, token)
		})
	}
}
