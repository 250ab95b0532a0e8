// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"jokeboard/src/app/http/handler"
	"jokeboard/src/app/http/response"
	"jokeboard/src/app/middleware"
	"jokeboard/src/app/web"
	"jokeboard/src/core/ports"
	"jokeboard/src/core/usecase"
	"jokeboard/src/infra/config"
	"jokeboard/src/infra/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	cookie *middleware.SessionCookie

	// Handlers
	healthHandler  *handler.HealthHandler
	jokesHandler   *handler.JokesHandler
	newJokeHandler *handler.NewJokeHandler
	authHandler    *handler.AuthHandler
}

// Option adjusts a Server before routes are registered.
type Option func(*options)

type options struct {
	bcryptCost int
}

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, store ports.Store, tokens ports.SessionTokens, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	router.HTMLRender = renderer

	// Create services
	healthService := usecase.NewHealthService(logger.WithComponent(log, "health"), map[string]ports.HealthChecker{"store": store})
	sessionService := usecase.NewSessionService(store, tokens, logger.WithComponent(log, "session"))
	if o.bcryptCost != 0 {
		sessionService.WithBcryptCost(o.bcryptCost)
	}
	jokeService := usecase.NewJokeService(store, sessionService, logger.WithComponent(log, "jokes"))
	submissionService := usecase.NewSubmissionService(store, logger.WithComponent(log, "submission"))

	cookie := middleware.NewSessionCookie(cfg.Session)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		cookie:         cookie,
		healthHandler:  handler.NewHealthHandler(healthService),
		jokesHandler:   handler.NewJokesHandler(jokeService, sessionService),
		newJokeHandler: handler.NewNewJokeHandler(jokeService, sessionService, submissionService),
		authHandler:    handler.NewAuthHandler(sessionService, cookie),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Security(s.cfg.Security))
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(s.cookie.Middleware())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	s.router.StaticFS("/static", web.Static())

	s.router.GET("/", handler.Index)

	s.router.GET("/login", s.authHandler.LoginPage)
	s.router.POST("/login", s.authHandler.Login)
	s.router.GET("/logout", s.authHandler.LogoutPage)
	s.router.POST("/logout", s.authHandler.Logout)

	jokes := s.router.Group("/jokes")
	{
		jokes.GET("", s.jokesHandler.Index)
		jokes.GET("/new", s.newJokeHandler.New)
		jokes.POST("/new", s.newJokeHandler.Create)
		jokes.POST("/new/preview", s.newJokeHandler.Preview)
		jokes.GET("/:id", s.jokesHandler.Show)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The page you were looking for does not exist.", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
