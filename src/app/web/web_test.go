package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layoutData struct {
	User  *struct{ Username string }
	Jokes []struct{ ID, Name string }
}

func TestRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for name := range pages {
		assert.Contains(t, r.pages, name)
	}
}

func TestRendererLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := struct {
		layoutData
		Joke any
	}{
		layoutData: layoutData{
			User:  &struct{ Username string }{Username: "kody"},
			Jokes: []struct{ ID, Name string }{{ID: "1", Name: "Frisbee"}},
		},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.Instance(PageJokesIndex, data).Render(rec))
	body := rec.Body.String()
	assert.Contains(t, body, "Hi kody")
	assert.Contains(t, body, `<li class="joke-list-item"><a href="/jokes/1">Frisbee</a></li>`)
	assert.Contains(t, body, "There are no jokes to display.")
	assert.Contains(t, body, `href="/jokes/new"`)
}

func TestRendererFragmentHasNoDocument(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	data := struct {
		ID, Name, Content string
		IsOwner           bool
	}{Name: "Frisbee", Content: "It hit me."}
	require.NoError(t, r.Instance(PageJokePreview, data).Render(rec))
	assert.Contains(t, rec.Body.String(), "It hit me.")
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestRendererUnknownPagePanics(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Panics(t, func() { r.Instance("nope", nil) })
}

func TestStatic(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(Static()))
	defer srv.Close()

	for _, name := range []string{"/global.css", "/preview.js"} {
		resp, err := http.Get(srv.URL + name)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, name)
	}
}
