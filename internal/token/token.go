// Package token issues and verifies the stateless session tokens that
// prove a successful login. Tokens are HS256-signed JWTs carrying the
// authenticated user id; they have no expiry claim and there is no
// revocation list, so a token is valid exactly as long as its signature
// verifies against the process-wide secret.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned by Verify for any token that is missing,
// malformed, tampered with, or signed with a different secret. Callers
// map it uniformly to "unauthenticated".
var ErrInvalidToken = errors.New("invalid session token")

// sessionClaims is the token payload: {"user": {"id": N}}.
type sessionClaims struct {
	User struct {
		ID uint `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with an immutable secret
// injected at construction; nothing reads configuration at call time.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager. An empty secret is a configuration
// error and must abort startup.
func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret cannot be empty")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// Issue produces a signed token bound to userID.
func (m *Manager) Issue(userID uint) (string, error) {
	claims := &sessionClaims{}
	claims.User.ID = userID

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the user id it
// is bound to. Every failure mode comes back wrapped in ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (uint, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.User.ID, nil
}
