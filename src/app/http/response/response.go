// Package response defines consistent HTTP responses.
// Every error reaches the browser as a rendered page.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeboard/src/app/http/dto"
	"jokeboard/src/app/web"
	"jokeboard/src/core/domain"
)

const msgInternal = "Something unexpected went wrong. Sorry about that."

// HTML renders page with status.
func HTML(c *gin.Context, status int, page string, data any) {
	c.HTML(status, page, data)
}

// Redirect sends a 303 so the browser follows up with a GET.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// ErrorPage renders the generic error page.
func ErrorPage(c *gin.Context, status int, heading, message, requestID string) {
	c.HTML(status, web.PageError, dto.ErrorView{
		Heading:   heading,
		Message:   message,
		RequestID: requestID,
	})
}

// NotFound sends a 404 page.
func NotFound(c *gin.Context, message, requestID string) {
	ErrorPage(c, http.StatusNotFound, "Not found", message, requestID)
}

// BadRequest sends a 400 page.
func BadRequest(c *gin.Context, message, requestID string) {
	ErrorPage(c, http.StatusBadRequest, "Bad request", message, requestID)
}

// Unauthorized sends a 401 page.
func Unauthorized(c *gin.Context, message, requestID string) {
	ErrorPage(c, http.StatusUnauthorized, "Unauthorized", message, requestID)
}

// InternalError sends a 500 page without internal detail.
func InternalError(c *gin.Context, requestID string) {
	ErrorPage(c, http.StatusInternalServerError, "Oops", msgInternal, requestID)
}

// FromDomainError converts a domain error to the matching error page.
func FromDomainError(c *gin.Context, err error, requestID string) {
	msg := domain.MessageOf(err)
	switch {
	case domain.IsNotFound(err):
		NotFound(c, msg, requestID)
	case domain.IsValidationError(err), domain.IsConflict(err):
		BadRequest(c, msg, requestID)
	case domain.IsUnauthorized(err):
		Unauthorized(c, msg, requestID)
	default:
		InternalError(c, requestID)
	}
}
