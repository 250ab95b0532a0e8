package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeboard/src/app/web"
	"jokeboard/src/infra/config"
	"jokeboard/src/infra/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"generated", "", false},
		{"reused", "abc-123.x_y", true},
		{"rejected characters", "<script>", false},
		{"too long", strings.Repeat("a", 65), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			id := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, id)
			assert.Equal(t, id, rec.Body.String())
			if tt.reused {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}
		})
	}
}

func TestSessionCookie(t *testing.T) {
	cookie := NewSessionCookie(config.SessionConfig{CookieName: "RJ_session", MaxAge: time.Hour})

	r := gin.New()
	r.Use(cookie.Middleware())
	r.GET("/token", func(c *gin.Context) { c.String(http.StatusOK, GetSessionToken(c)) })
	r.GET("/set", func(c *gin.Context) { cookie.Set(c, "tok") })
	r.GET("/clear", func(c *gin.Context) { cookie.Clear(c) })

	req := httptest.NewRequest(http.MethodGet, "/token", nil)
	req.AddCookie(&http.Cookie{Name: "RJ_session", Value: "abc"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token", nil))
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clear", nil))
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(Security(config.SecurityConfig{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRecoveryRendersGenericPage(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(Recovery(logger.Discard()), RequestID())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Something unexpected went wrong. Sorry about that.")
	assert.Contains(t, body, "req-42")
	assert.NotContains(t, body, "boom")
}
