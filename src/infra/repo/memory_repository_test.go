package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeboard/src/core/domain"
)

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestMemoryRepositoryUsers(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	_, err = r.CreateUser(ctx, "kody", "other")
	assert.True(t, domain.IsConflict(err))

	got, err := r.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "kody", got.Username)

	got, err = r.GetUserByUsername(ctx, "kody")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.GetUserByID(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	_, err = r.GetUserByUsername(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestMemoryRepositoryRecentJokesNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository().WithClock(steppingClock())
	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)

	for i := 1; i <= 7; i++ {
		_, err := r.CreateJoke(ctx, domain.NewJoke{
			Name:       fmt.Sprintf("joke %d", i),
			Content:    "long enough content",
			JokesterID: u.ID,
		})
		require.NoError(t, err)
	}

	got, err := r.RecentJokeSummaries(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	names := make([]string, len(got))
	for i, j := range got {
		names[i] = j.Name
	}
	assert.Equal(t, []string{"joke 7", "joke 6", "joke 5", "joke 4", "joke 3"}, names)
}

func TestMemoryRepositoryRecentJokesSameTimestamp(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewMemoryRepository().WithClock(func() time.Time { return fixed })
	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)

	for _, name := range []string{"first", "second"} {
		_, err := r.CreateJoke(ctx, domain.NewJoke{Name: name, Content: "long enough content", JokesterID: u.ID})
		require.NoError(t, err)
	}

	got, err := r.RecentJokeSummaries(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Name)
}

func TestMemoryRepositoryJokes(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	none, err := r.RandomJoke(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = r.CreateJoke(ctx, domain.NewJoke{Name: "orphan", Content: "long enough content", JokesterID: "nobody"})
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))
	assert.Zero(t, r.JokeCount())

	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)
	j, err := r.CreateJoke(ctx, domain.NewJoke{Name: "Frisbee", Content: "I was wondering why the frisbee was getting bigger", JokesterID: u.ID})
	require.NoError(t, err)

	got, err := r.GetJoke(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frisbee", got.Name)
	assert.True(t, got.IsOwnedBy(u.ID))

	random, err := r.RandomJoke(ctx)
	require.NoError(t, err)
	assert.Equal(t, j.ID, random.ID)

	_, err = r.GetJoke(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, 1, r.JokeCount())
}
