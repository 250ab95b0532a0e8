package repo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/ports"
)

var _ ports.Store = (*MemoryRepository)(nil)

// MemoryRepository is an in-process ports.Store used by tests and by
// APP_DB_DRIVER=memory. Data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	jokes []domain.Joke
	now   func() time.Time
}

// NewMemoryRepository returns an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]domain.User),
		now:   time.Now,
	}
}

// WithClock replaces the timestamp source.
func (r *MemoryRepository) WithClock(now func() time.Time) *MemoryRepository {
	r.now = now
	return r
}

func (r *MemoryRepository) Health(context.Context) error {
	return nil
}

func (r *MemoryRepository) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	now := r.now()
	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	return &u, nil
}

func (r *MemoryRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return &u, nil
}

func (r *MemoryRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *MemoryRepository) RecentJokeSummaries(_ context.Context, limit int) ([]domain.JokeSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// jokes is append-only, so insertion order breaks created_at ties.
	idx := make([]int, len(r.jokes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ja, jb := r.jokes[idx[a]], r.jokes[idx[b]]
		if !ja.CreatedAt.Equal(jb.CreatedAt) {
			return ja.CreatedAt.After(jb.CreatedAt)
		}
		return idx[a] > idx[b]
	})

	if limit < len(idx) {
		idx = idx[:limit]
	}
	out := make([]domain.JokeSummary, 0, len(idx))
	for _, i := range idx {
		out = append(out, domain.JokeSummary{ID: r.jokes[i].ID, Name: r.jokes[i].Name})
	}
	return out, nil
}

func (r *MemoryRepository) CreateJoke(_ context.Context, joke domain.NewJoke) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Mirrors the foreign key on jokes.jokester_id.
	if _, ok := r.users[joke.JokesterID]; !ok {
		return nil, fmt.Errorf("insert joke: jokester %s does not exist", joke.JokesterID)
	}
	now := r.now()
	j := domain.Joke{
		ID:         uuid.NewString(),
		JokesterID: joke.JokesterID,
		Name:       joke.Name,
		Content:    joke.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.jokes = append(r.jokes, j)
	return &j, nil
}

func (r *MemoryRepository) GetJoke(_ context.Context, jokeID string) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.jokes {
		if j.ID == jokeID {
			return &j, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (r *MemoryRepository) RandomJoke(context.Context) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.jokes) == 0 {
		return nil, nil
	}
	j := r.jokes[rand.IntN(len(r.jokes))]
	return &j, nil
}

// JokeCount returns how many jokes are stored.
func (r *MemoryRepository) JokeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jokes)
}
