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

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	sessions *usecase.SessionService
	cookie   *middleware.SessionCookie
}

func NewAuthHandler(sessions *usecase.SessionService, cookie *middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookie: cookie}
}

// loginURL is the login page returning to returnTo afterwards.
func loginURL(returnTo string) string {
	return "/login?" + dto.FieldRedirectTo + "=" + domain.SafeRedirect(returnTo)
}

// LoginPage renders the login form.
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	response.HTML(c, http.StatusOK, web.PageLogin, dto.LoginView{
		RedirectTo: domain.SafeRedirect(c.Query(dto.FieldRedirectTo)),
		Fields:     dto.LoginFields{LoginType: usecase.LoginTypeLogin},
	})
}

// Login logs in or registers, sets the session cookie and redirects.
// Failures re-render the form with 400.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	form := dto.ParseLoginForm(c)
	view := dto.LoginView{
		RedirectTo: domain.SafeRedirect(form.RedirectTo.Value),
		Fields: dto.LoginFields{
			LoginType: form.LoginType.Value,
			Username:  form.Username.Value,
		},
	}

	if !form.Complete() {
		view.FormError = domain.FormErrorMalformed
		response.HTML(c, http.StatusBadRequest, web.PageLogin, view)
		return
	}

	in := form.ToInput()
	if errs := in.Validate(); errs.Any() {
		view.FieldErrors = errs
		response.HTML(c, http.StatusBadRequest, web.PageLogin, view)
		return
	}

	res, err := h.sessions.Authenticate(c.Request.Context(), in)
	if err != nil {
		if domain.IsUnauthorized(err) || domain.IsConflict(err) || domain.IsValidationError(err) {
			view.FormError = domain.MessageOf(err)
			response.HTML(c, http.StatusBadRequest, web.PageLogin, view)
			return
		}
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	h.cookie.Set(c, res.Token)
	response.Redirect(c, view.RedirectTo)
}

// Logout clears the session cookie.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	response.Redirect(c, "/")
}

// LogoutPage only redirects; logging out takes a POST.
// GET /logout
func (h *AuthHandler) LogoutPage(c *gin.Context) {
	response.Redirect(c, "/")
}
