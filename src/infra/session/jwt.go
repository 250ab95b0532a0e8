// Package session signs and verifies the session cookie credential.
//
// A session is an HS256 JWT whose subject is the user id. Nothing is kept
// server side; logging out removes the cookie.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jokeboard/src/core/ports"
)

const issuer = "jokeboard"

var _ ports.SessionTokens = (*JWTTokens)(nil)

// JWTTokens implements ports.SessionTokens with HMAC-signed JWTs.
type JWTTokens struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewJWTTokens returns a token codec. maxAge bounds how long an issued
// token is accepted.
func NewJWTTokens(secret string, maxAge time.Duration) *JWTTokens {
	return &JWTTokens{secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

// WithClock replaces the time source used for issuing and validating.
func (t *JWTTokens) WithClock(now func() time.Time) *JWTTokens {
	t.now = now
	return t
}

// Issue returns a signed token for userID.
func (t *JWTTokens) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.maxAge)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its user id.
func (t *JWTTokens) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token: missing subject")
	}
	return claims.Subject, nil
}
