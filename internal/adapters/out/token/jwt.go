// Package token implements the session token service on HS256 JWTs. A token
// carries only the user id; the caller's role is resolved from storage on
// every request, so a role change takes effect without reissuing tokens.
package token

import (
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 30 * 24 * time.Hour

// JWTService signs and verifies session tokens with a shared HMAC secret.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a token service with the given signing secret.
func NewJWTService(secret string) (*JWTService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	return &JWTService{secret: []byte(secret)}, nil
}

// Sign issues a token for the given user id.
func (s *JWTService) Sign(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks a caller-supplied token and returns the user id it was
// issued for. Any defect in the token, from a bad signature to an expired
// claim, comes back as unauthorized.
func (s *JWTService) Verify(token string) (kernel.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	return userID, nil
}
