// Package token issues and verifies the signed bearer tokens used for
// API authentication.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is the fixed validity window of an issued token.
// There is no refresh or revocation; a token simply expires.
const DefaultLifetime = 72 * time.Hour

// Claims is the token payload. The user ID travels in the registered
// Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Generator defines the interface for bearer token issuance.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new token generator with the provided secret and
// expiration duration. The secret is fixed at construction; rotating it
// invalidates every previously issued token.
func NewGenerator(secret string, expiration time.Duration) Generator {
	if expiration <= 0 {
		expiration = DefaultLifetime
	}
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token with registered claims.
func (g *generator) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
