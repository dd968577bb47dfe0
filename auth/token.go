package auth

import (
	"accelerator-hub/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "accelerator-hub"

// UserClaim is the "user" object the CRUD API puts in its tokens.
type UserClaim struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Claims defines the structure of the data stored inside the JWT.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 token for the identity.
func GenerateToken(secret []byte, identity domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: UserClaim{ID: identity.UserID, Role: string(identity.Role)},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken checks the signature, the algorithm and the expiration.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
