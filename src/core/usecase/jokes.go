package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/ports"
)

// JokeService serves the read side of the jokes pages.
type JokeService struct {
	repo     ports.JokeRepository
	sessions *SessionService
	log      *slog.Logger
}

func NewJokeService(repo ports.JokeRepository, sessions *SessionService, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, sessions: sessions, log: log}
}

// JokesLayout is what the jokes layout needs on every page beneath /jokes.
type JokesLayout struct {
	// User is nil for anonymous visitors.
	User  *domain.User
	Jokes []domain.JokeSummary
}

// Layout loads the newest joke summaries and the current user.
func (s *JokeService) Layout(ctx context.Context, token string) (*JokesLayout, error) {
	jokes, err := s.repo.RecentJokeSummaries(ctx, domain.RecentJokesLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent jokes: %w", err)
	}
	if len(jokes) > domain.RecentJokesLimit {
		jokes = jokes[:domain.RecentJokesLimit]
	}

	user, err := s.sessions.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}

	return &JokesLayout{User: user, Jokes: jokes}, nil
}

// Random returns a random joke, or nil when there are none.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	joke, err := s.repo.RandomJoke(ctx)
	if err != nil {
		return nil, fmt.Errorf("random joke: %w", err)
	}
	return joke, nil
}

// Get returns one joke by id.
func (s *JokeService) Get(ctx context.Context, jokeID string) (*domain.Joke, error) {
	return s.repo.GetJoke(ctx, jokeID)
}
