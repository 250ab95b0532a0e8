package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeboard/src/app/http/dto"
	"jokeboard/src/app/http/response"
	"jokeboard/src/app/middleware"
	"jokeboard/src/app/web"
	"jokeboard/src/core/domain"
	"jokeboard/src/core/usecase"
)

// NewJokePath is the new-joke page; it is also where login returns to.
const NewJokePath = "/jokes/new"

// NewJokeHandler serves the new-joke form, its submission and its preview.
type NewJokeHandler struct {
	jokes       *usecase.JokeService
	sessions    *usecase.SessionService
	submissions *usecase.SubmissionService
}

func NewNewJokeHandler(jokes *usecase.JokeService, sessions *usecase.SessionService, submissions *usecase.SubmissionService) *NewJokeHandler {
	return &NewJokeHandler{jokes: jokes, sessions: sessions, submissions: submissions}
}

// requireUser renders the login prompt and reports false when there is no
// valid session.
func (h *NewJokeHandler) requireUser(c *gin.Context, layout dto.JokesLayoutView) (string, bool) {
	userID, err := h.sessions.RequireUserID(middleware.GetSessionToken(c), NewJokePath)
	if err != nil {
		response.HTML(c, http.StatusUnauthorized, web.PageJokesUnauthorize, dto.UnauthorizedView{
			JokesLayoutView: layout,
			LoginURL:        loginURL(domain.ReturnPath(err)),
		})
		return "", false
	}
	return userID, true
}

// New renders the empty form.
// GET /jokes/new
func (h *NewJokeHandler) New(c *gin.Context) {
	layout, ok := loadLayout(c, h.jokes)
	if !ok {
		return
	}
	if _, ok := h.requireUser(c, layout); !ok {
		return
	}
	response.HTML(c, http.StatusOK, web.PageJokesNew, dto.NewJokeView{JokesLayoutView: layout})
}

// Create validates and stores a joke. Rejected submissions re-render the
// form with 200; a created joke redirects to its page.
// POST /jokes/new
func (h *NewJokeHandler) Create(c *gin.Context) {
	layout, ok := loadLayout(c, h.jokes)
	if !ok {
		return
	}
	userID, ok := h.requireUser(c, layout)
	if !ok {
		return
	}

	sub, err := h.submissions.Submit(c.Request.Context(), userID, dto.JokeSubmission(c))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	switch sub.State() {
	case domain.SubmissionRedirecting:
		response.Redirect(c, "/jokes/"+sub.JokeID())
	default:
		response.HTML(c, http.StatusOK, web.PageJokesNew, dto.NewJokeViewFrom(layout, sub))
	}
}

// Preview renders the would-be joke for input that currently validates,
// or 204 when it does not. Nothing is stored.
// POST /jokes/new/preview
func (h *NewJokeHandler) Preview(c *gin.Context) {
	if _, ok := h.sessions.GetUserID(middleware.GetSessionToken(c)); !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	preview, ok := usecase.PreviewSubmission(dto.JokeSubmission(c))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	response.HTML(c, http.StatusOK, web.PageJokePreview, dto.DisplayPreview(preview))
}
