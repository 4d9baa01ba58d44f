package token

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are reported as one of these kinds so callers can
// distinguish them internally. The HTTP layer collapses all of them into a
// single 401 without disclosing which one occurred.
var (
	// ErrTokenMalformed indicates the token is not a well-formed JWT.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired indicates the token's validity window has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid indicates a bad signature, a disallowed signing
	// method, or an unusable subject claim.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Verifier defines the interface for bearer token verification.
type Verifier interface {
	// VerifyToken checks the token's signature and validity window and
	// returns the user ID it was issued for.
	VerifyToken(tokenStr string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates a signed token.
func (v *verifier) VerifyToken(tokenStr string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}
