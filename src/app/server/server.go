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

	"oblog/src/app/http/dto"
	"oblog/src/app/http/handler"
	"oblog/src/app/http/response"
	"oblog/src/app/middleware"
	"oblog/src/core/ports"
	"oblog/src/core/usecase"
	"oblog/src/infra/config"
)

const (
	apiName    = "oblog"
	apiVersion = "1.0.0"
)

// Deps holds the adapters the server is wired to.
type Deps struct {
	Categories ports.CategoryRepository
	Posts      ports.PostRepository
	// Checkers are pinged by /health/detailed, keyed by component name.
	Checkers map[string]ports.HealthChecker
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	apiHandler      *handler.APIHandler
	categoryHandler *handler.CategoryHandler
	postHandler     *handler.PostHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) (*Server, error) {
	switch {
	case cfg.Log.Level == "debug" && !cfg.IsProduction():
		gin.SetMode(gin.DebugMode)
	case gin.Mode() != gin.TestMode:
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(deps.Checkers, log)
	categoryService := usecase.NewCategoryService(deps.Categories, log)
	postService := usecase.NewPostService(deps.Posts, log)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		apiHandler:      handler.NewAPIHandler(apiName, apiVersion),
		categoryHandler: handler.NewCategoryHandler(categoryService),
		postHandler:     handler.NewPostHandler(postService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// RequestID runs first so a recovered panic still carries the id.
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.CORS(s.cfg.CORS.AllowedOrigins()))
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	{
		api.Any("", s.apiHandler.Index)

		categories := api.Group("/categories")
		categories.GET("", s.categoryHandler.List)
		categories.POST("", s.categoryHandler.Create)
		categories.GET("/:id", s.categoryHandler.Get)
		categories.PATCH("/:id", s.categoryHandler.Update)
		categories.DELETE("/:id", s.categoryHandler.Delete)

		posts := api.Group("/posts")
		posts.GET("", s.postHandler.List)
		posts.POST("", s.postHandler.Create)
		posts.GET("/category/:id", s.postHandler.ListByCategory)
		posts.GET("/:id", s.postHandler.Get)
		posts.PATCH("/:id", s.postHandler.Update)
		posts.DELETE("/:id", s.postHandler.Delete)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "API Route not found", middleware.GetRequestID(c))
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

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
			"env", s.cfg.Env,
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
