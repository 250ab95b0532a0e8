package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokensRoundTrip(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	token, err := tokens.Issue("user-1")
	require.NoError(t, err)

	userID, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTTokensRejects(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens := NewJWTTokens("secret", time.Hour).WithClock(func() time.Time { return now })
	valid, err := tokens.Issue("user-1")
	require.NoError(t, err)

	otherSecret, err := NewJWTTokens("other", time.Hour).WithClock(func() time.Time { return now }).Issue("user-1")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	expired := NewJWTTokens("secret", time.Hour).WithClock(func() time.Time { return now.Add(2 * time.Hour) })

	tests := []struct {
		name   string
		tokens *JWTTokens
		token  string
	}{
		{"garbage", tokens, "not-a-token"},
		{"empty", tokens, ""},
		{"tampered", tokens, valid + "x"},
		{"wrong secret", tokens, otherSecret},
		{"none algorithm", tokens, noneAlg},
		{"expired", expired, valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tokens.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTTokensIssueRequiresUser(t *testing.T) {
	_, err := NewJWTTokens("secret", time.Hour).Issue("")
	assert.Error(t, err)
}
