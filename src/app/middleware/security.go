package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"jokeboard/src/infra/config"
)

// Security sets the standard security headers. HSTS and the HTTPS redirect
// are only enabled when the app itself terminates TLS.
func Security(cfg config.SecurityConfig) gin.HandlerFunc {
	secureConfig := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data:; style-src 'self'; script-src 'self'",
	}
	if cfg.SSLRedirect {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
		secureConfig.SSLProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}
	}
	return secure.New(secureConfig)
}
