// Package web serves the task list as a server-rendered page and a small JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"todoweb/internal/app"
	"todoweb/internal/config"
	"todoweb/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server is the todoweb web server.
type Server struct {
	root    *app.Root
	router  *gin.Engine
	origins []string
	log     *slog.Logger
}

// NewServer creates a server around root. The root is mounted by Run.
func NewServer(root *app.Root, cfg *config.Config, log *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		root:    root,
		router:  router,
		origins: cfg.CORSOrigins,
		log:     log,
	}

	router.Use(s.requestLogger(), recordMetrics())
	router.SetHTMLTemplate(tmpl)

	// Web routes
	router.GET("/", s.handleIndex)
	router.POST("/tasks", s.handleCreate)
	router.POST("/tasks/:id/toggle", s.handleToggle)
	router.POST("/tasks/:id/delete", s.handleDelete)
	router.POST("/refresh", s.handleRefresh)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleAPIList)
		api.POST("/tasks", s.handleAPICreate)
		api.POST("/tasks/:id/toggle", s.handleAPIToggle)
		api.DELETE("/tasks/:id", s.handleAPIDelete)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s, nil
}

// Handler returns the router wrapped with CORS handling for the JSON API.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router)
}

// Run mounts the task list and serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Load failures are already recorded on the list.
		_ = s.root.Mount(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.root.Unmount()
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	s.root.Unmount()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func recordMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
