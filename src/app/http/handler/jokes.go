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

// JokesHandler serves the read-only pages under /jokes.
type JokesHandler struct {
	jokes    *usecase.JokeService
	sessions *usecase.SessionService
}

func NewJokesHandler(jokes *usecase.JokeService, sessions *usecase.SessionService) *JokesHandler {
	return &JokesHandler{jokes: jokes, sessions: sessions}
}

// loadLayout loads the jokes layout or renders the error page and reports
// false.
func loadLayout(c *gin.Context, jokes *usecase.JokeService) (dto.JokesLayoutView, bool) {
	layout, err := jokes.Layout(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return dto.JokesLayoutView{}, false
	}
	return dto.LayoutFrom(layout), true
}

// Index renders a random joke beneath the list.
// GET /jokes
func (h *JokesHandler) Index(c *gin.Context) {
	layout, ok := loadLayout(c, h.jokes)
	if !ok {
		return
	}

	joke, err := h.jokes.Random(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.HTML(c, http.StatusOK, web.PageJokesIndex, dto.JokesIndexView{
		JokesLayoutView: layout,
		Joke:            joke,
	})
}

// Show renders one joke.
// GET /jokes/:id
func (h *JokesHandler) Show(c *gin.Context) {
	layout, ok := loadLayout(c, h.jokes)
	if !ok {
		return
	}

	jokeID := c.Param("id")
	joke, err := h.jokes.Get(c.Request.Context(), jokeID)
	if err != nil {
		if domain.IsNotFound(err) {
			response.HTML(c, http.StatusNotFound, web.PageJokeNotFound, dto.JokeNotFoundView{
				JokesLayoutView: layout,
				JokeID:          jokeID,
			})
			return
		}
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	viewerID, _ := h.sessions.GetUserID(middleware.GetSessionToken(c))
	response.HTML(c, http.StatusOK, web.PageJokeShow, dto.JokeShowView{
		JokesLayoutView: layout,
		Display:         dto.DisplayJoke(joke, viewerID),
	})
}
