// Package token issues and verifies the signed, time-limited identity
// tokens used by the API. Tokens are HS256 JWTs carrying the user id, email
// and role; no server-side session state exists.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/movielobby/catalog-api/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = time.Hour

// Identity is the verified claim set attached to an authenticated request.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

// Manager signs and verifies identity tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the identity claims, expiring
// ttl from now.
func (m *Manager) Issue(id Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id.UserID,
		"email":   id.Email,
		"role":    string(id.Role),
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. It returns
// domain.ErrInvalidToken on a bad signature, wrong algorithm, malformed
// input, elapsed expiry, or an unrecognised role claim. It never panics on
// malformed input.
func (m *Manager) Verify(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	rawRole, _ := claims["role"].(string)

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &Identity{UserID: userID, Email: email, Role: role}, nil
}
