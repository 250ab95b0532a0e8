// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokeboard/src/core/domain"
)

// Repository is the base interface for all repositories. Every store can be
// pinged by the health check.
type Repository interface {
	HealthChecker
}

// UserRepository persists users.
type UserRepository interface {
	// CreateUser stores a new user. A taken username yields a conflict error.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// JokeRepository persists jokes.
type JokeRepository interface {
	// RecentJokeSummaries returns up to limit summaries, newest first.
	RecentJokeSummaries(ctx context.Context, limit int) ([]domain.JokeSummary, error)
	CreateJoke(ctx context.Context, joke domain.NewJoke) (*domain.Joke, error)
	GetJoke(ctx context.Context, jokeID string) (*domain.Joke, error)
	// RandomJoke returns nil, nil when there are no jokes.
	RandomJoke(ctx context.Context) (*domain.Joke, error)
}

// Store is the composite repository the application is wired with.
type Store interface {
	Repository
	UserRepository
	JokeRepository
}
