// Package web holds the embedded HTML templates and static assets and the
// gin renderer that serves them.
//
// Every page is its own template set: base.html plus the files that fill
// its "content" (and, beneath /jokes, "outlet") slots. Executing a page
// always starts at the "base" template.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Renderer.
const (
	PageIndex            = "index"
	PageJokesIndex       = "jokes/index"
	PageJokesNew         = "jokes/new"
	PageJokeShow         = "jokes/show"
	PageJokeNotFound     = "jokes/not_found"
	PageJokesUnauthorize = "jokes/unauthorized"
	PageJokePreview      = "jokes/preview"
	PageLogin            = "login"
	PageError            = "error"
)

const entryTemplate = "base"

var pages = map[string][]string{
	PageIndex:            {"base.html", "index.html"},
	PageJokesIndex:       {"base.html", "jokes_layout.html", "jokes_index.html"},
	PageJokesNew:         {"base.html", "jokes_layout.html", "jokes_new.html"},
	PageJokeShow:         {"base.html", "jokes_layout.html", "joke_display.html", "joke_show.html"},
	PageJokeNotFound:     {"base.html", "jokes_layout.html", "joke_not_found.html"},
	PageJokesUnauthorize: {"base.html", "jokes_layout.html", "jokes_unauthorized.html"},
	PageJokePreview:      {"joke_display.html", "preview.html"},
	PageLogin:            {"base.html", "login.html"},
	PageError:            {"base.html", "error.html"},
}

// Renderer implements gin's render.HTMLRender over the embedded pages.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses every page set up front so a broken template fails at
// startup rather than on first request.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for name, files := range pages {
		patterns := make([]string, len(files))
		for i, f := range files {
			patterns[i] = "templates/" + f
		}
		t, err := template.New(name).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		if t.Lookup(entryTemplate) == nil {
			return nil, fmt.Errorf("page %q has no %q template", name, entryTemplate)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Instance implements render.HTMLRender. Unknown pages panic, which the
// recovery middleware turns into the error page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page %q", name))
	}
	return render.HTML{
		Template: t,
		Name:     entryTemplate,
		Data:     data,
	}
}

// Static returns the embedded static assets for router.StaticFS.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return http.FS(sub)
}
