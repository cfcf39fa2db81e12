// Package auth issues and verifies bearer credentials and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront-service/internal/domain"
)

type Claims struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs HS256 credentials that expire after ttl.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(id domain.Identity) (string, error) {
	now := t.now()
	claims := Claims{
		ID:    id.ID,
		Email: id.Email,
		Name:  id.Name,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify rejects an empty credential with ErrUnauthorized and anything that
// does not parse, carries the wrong signature or has expired with ErrForbidden.
func (t *Tokens) Verify(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, fmt.Errorf("%w: token expired", domain.ErrForbidden)
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	}

	return domain.Identity{ID: claims.ID, Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
}
