package domain

import "time"

// RecentJokesLimit caps how many jokes the jokes layout lists.
const RecentJokesLimit = 5

// User is a registered jokester.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Joke is a user-submitted joke. Jokes are never updated or deleted.
type Joke struct {
	ID         string
	JokesterID string
	Name       string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// JokeSummary is the list projection of a joke.
type JokeSummary struct {
	ID   string
	Name string
}

// NewJoke carries the fields needed to persist a joke.
type NewJoke struct {
	Name       string
	Content    string
	JokesterID string
}

// IsOwnedBy reports whether userID authored the joke.
func (j *Joke) IsOwnedBy(userID string) bool {
	return userID != "" && j.JokesterID == userID
}
