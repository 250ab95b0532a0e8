package ports

import (
	"context"
)

// HealthChecker is anything /health/detailed can ping.
type HealthChecker interface {
	// Health reports whether the component is reachable.
	Health(ctx context.Context) error
}

// SessionTokens issues and verifies the signed credential stored in the
// session cookie.
type SessionTokens interface {
	// Issue returns a token identifying userID.
	Issue(userID string) (string, error)
	// Parse returns the user id of a valid token, or an error for anything
	// expired, tampered with or malformed.
	Parse(token string) (string, error)
}
