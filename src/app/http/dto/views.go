package dto

import (
	"jokeboard/src/core/domain"
	"jokeboard/src/core/usecase"
)

// ErrorView is the generic error page.
type ErrorView struct {
	Heading   string
	Message   string
	RequestID string
}

// JokesLayoutView is shared by every page under /jokes.
type JokesLayoutView struct {
	User  *domain.User
	Jokes []domain.JokeSummary
}

// LayoutFrom converts the usecase layout.
func LayoutFrom(l *usecase.JokesLayout) JokesLayoutView {
	if l == nil {
		return JokesLayoutView{}
	}
	return JokesLayoutView{User: l.User, Jokes: l.Jokes}
}

// JokesIndexView shows a random joke, or nothing when Joke is nil.
type JokesIndexView struct {
	JokesLayoutView
	Joke *domain.Joke
}

// JokeDisplay renders one joke. ID is empty for previews, which have no
// permalink yet.
type JokeDisplay struct {
	ID      string
	Name    string
	Content string
	IsOwner bool
}

// DisplayJoke builds the display for a stored joke as seen by viewerID.
func DisplayJoke(j *domain.Joke, viewerID string) JokeDisplay {
	return JokeDisplay{
		ID:      j.ID,
		Name:    j.Name,
		Content: j.Content,
		IsOwner: viewerID != "" && j.IsOwnedBy(viewerID),
	}
}

// DisplayPreview builds the display for a joke that is not stored yet.
func DisplayPreview(p *usecase.JokePreview) JokeDisplay {
	return JokeDisplay{Name: p.Name, Content: p.Content}
}

// JokeShowView is the permalink page.
type JokeShowView struct {
	JokesLayoutView
	Display JokeDisplay
}

// JokeNotFoundView is shown for an unknown joke id.
type JokeNotFoundView struct {
	JokesLayoutView
	JokeID string
}

// NewJokeView is the new-joke form, possibly with errors from a rejected
// submission.
type NewJokeView struct {
	JokesLayoutView
	FormError   string
	Fields      domain.JokeFields
	FieldErrors domain.FieldErrors
}

// NewJokeViewFrom renders a rejected submission.
func NewJokeViewFrom(layout JokesLayoutView, sub *domain.Submission) NewJokeView {
	return NewJokeView{
		JokesLayoutView: layout,
		FormError:       sub.FormError(),
		Fields:          sub.Fields(),
		FieldErrors:     sub.FieldErrors(),
	}
}

// UnauthorizedView is the login prompt for protected pages.
type UnauthorizedView struct {
	JokesLayoutView
	LoginURL string
}

// LoginFields are the login values echoed back into the form. The password
// is never echoed.
type LoginFields struct {
	LoginType string
	Username  string
}

// LoginView is the login page.
type LoginView struct {
	RedirectTo  string
	FormError   string
	Fields      LoginFields
	FieldErrors usecase.LoginFieldErrors
}
