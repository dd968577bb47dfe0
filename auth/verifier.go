package auth

import (
	"accelerator-hub/domain"
	"accelerator-hub/errors"
	"accelerator-hub/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
)

// Verifier turns a bearer token into an Identity.
// When a user directory is configured, the subject must exist there and
// must not be disabled.
type Verifier struct {
	log    *slog.Logger
	secret []byte
	users  repositories.IUserRepository
}

func NewVerifier(log *slog.Logger, secret []byte, users repositories.IUserRepository) *Verifier {
	return &Verifier{log: log, secret: secret, users: users}
}

// Verify never returns an Identity together with an error.
// Every failure wraps errors.ErrAuthentication.
func (v *Verifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, errors.ErrMissingToken
	}

	claims, err := ParseToken(v.secret, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	if claims.User.ID == "" {
		return domain.Identity{}, fmt.Errorf("%w: empty subject", errors.ErrInvalidToken)
	}
	role, err := domain.ParseRole(claims.User.Role)
	if err != nil {
		return domain.Identity{}, err
	}
	identity := domain.Identity{UserID: claims.User.ID, Role: role}

	if v.users == nil {
		return identity, nil
	}
	user, err := v.users.GetUser(identity.UserID)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.Identity{}, err
		}
		v.log.Error("User directory lookup failed", "user_id", identity.UserID, "error", err)
		return domain.Identity{}, fmt.Errorf("%w: directory unavailable", errors.ErrAuthentication)
	}
	if user.Disabled {
		return domain.Identity{}, fmt.Errorf("%w: %s", errors.ErrUserDisabled, identity.UserID)
	}
	return identity, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
