package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jokeboard/src/core/domain"
	"jokeboard/src/infra/logger"
	"jokeboard/src/infra/repo"
	"jokeboard/src/infra/session"
)

type fixture struct {
	store       *repo.MemoryRepository
	tokens      *session.JWTTokens
	sessions    *SessionService
	jokes       *JokeService
	submissions *SubmissionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.Discard()
	store := repo.NewMemoryRepository()
	tokens := session.NewJWTTokens("test-secret", time.Hour)
	sessions := NewSessionService(store, tokens, log).WithBcryptCost(bcrypt.MinCost)
	return &fixture{
		store:       store,
		tokens:      tokens,
		sessions:    sessions,
		jokes:       NewJokeService(store, sessions, log),
		submissions: NewSubmissionService(store, log),
	}
}

// register creates a user and returns it with a session token.
func (f *fixture) register(t *testing.T, username string) (*domain.User, string) {
	t.Helper()
	res, err := f.sessions.Register(context.Background(), username, "password123")
	require.NoError(t, err)
	return res.User, res.Token
}
