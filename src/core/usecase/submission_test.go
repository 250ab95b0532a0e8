package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeboard/src/core/domain"
)

const goodContent = "I was wondering why the frisbee kept getting bigger, then it hit me."

func TestSubmitCreatesJoke(t *testing.T) {
	f := newFixture(t)
	user, _ := f.register(t, "kody")

	sub, err := f.submissions.Submit(context.Background(), user.ID, domain.RawSubmission{
		Name:    domain.Text("Frisbee"),
		Content: domain.Text(goodContent),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRedirecting, sub.State())
	require.NotEmpty(t, sub.JokeID())

	joke, err := f.store.GetJoke(context.Background(), sub.JokeID())
	require.NoError(t, err)
	assert.Equal(t, "Frisbee", joke.Name)
	assert.Equal(t, goodContent, joke.Content)
	assert.True(t, joke.IsOwnedBy(user.ID))
}

func TestSubmitFieldErrors(t *testing.T) {
	f := newFixture(t)
	user, _ := f.register(t, "kody")

	sub, err := f.submissions.Submit(context.Background(), user.ID, domain.RawSubmission{
		Name:    domain.Text("a"),
		Content: domain.Text("short"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, sub.State())
	assert.Equal(t, "That joke's name is too short", sub.FieldErrors().Name)
	assert.Equal(t, "That joke is too short", sub.FieldErrors().Content)
	assert.Equal(t, domain.JokeFields{Name: "a", Content: "short"}, sub.Fields())
	assert.Empty(t, sub.FormError())
	assert.Zero(t, f.store.JokeCount())
}

func TestSubmitMalformed(t *testing.T) {
	f := newFixture(t)
	user, _ := f.register(t, "kody")

	sub, err := f.submissions.Submit(context.Background(), user.ID, domain.RawSubmission{
		Name: domain.Text("a"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, sub.State())
	assert.Equal(t, domain.FormErrorMalformed, sub.FormError())
	assert.False(t, sub.FieldErrors().Any())
	assert.Zero(t, f.store.JokeCount())
}

func TestSubmitStoreFailure(t *testing.T) {
	f := newFixture(t)

	// Unknown jokester: the store refuses the row.
	_, err := f.submissions.Submit(context.Background(), "ghost", domain.RawSubmission{
		Name:    domain.Text("Frisbee"),
		Content: domain.Text(goodContent),
	})
	require.Error(t, err)
	assert.Zero(t, f.store.JokeCount())
}

func TestPreviewSubmission(t *testing.T) {
	preview, ok := PreviewSubmission(domain.RawSubmission{
		Name:    domain.Text("Frisbee"),
		Content: domain.Text(goodContent),
	})
	require.True(t, ok)
	assert.Equal(t, &JokePreview{Name: "Frisbee", Content: goodContent}, preview)

	_, ok = PreviewSubmission(domain.RawSubmission{Name: domain.Text("a"), Content: domain.Text(goodContent)})
	assert.False(t, ok)

	_, ok = PreviewSubmission(domain.RawSubmission{Content: domain.Text(goodContent)})
	assert.False(t, ok)
}
