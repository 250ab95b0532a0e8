package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeboard/src/infra/config"
)

// SessionTokenKey is the context key for the raw session cookie value.
const SessionTokenKey = "session_token"

// SessionCookie reads and writes the session cookie.
type SessionCookie struct {
	cfg config.SessionConfig
}

func NewSessionCookie(cfg config.SessionConfig) *SessionCookie {
	return &SessionCookie{cfg: cfg}
}

// Middleware stores the session cookie value, if any, under SessionTokenKey.
// The token is not verified here; the session service treats anything it
// cannot verify as no session.
func (s *SessionCookie) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(s.cfg.CookieName); err == nil {
			c.Set(SessionTokenKey, token)
		}
		c.Next()
	}
}

// Set writes the session cookie.
func (s *SessionCookie) Set(c *gin.Context, token string) {
	s.write(c, token, int(s.cfg.MaxAge.Seconds()))
}

// Clear removes the session cookie.
func (s *SessionCookie) Clear(c *gin.Context) {
	s.write(c, "", -1)
}

func (s *SessionCookie) write(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// GetSessionToken returns the raw session token, or "" when there is none.
func GetSessionToken(c *gin.Context) string {
	return c.GetString(SessionTokenKey)
}
