// Package api is the HTTP surface: task submission and control, task
// inspection, and the WebSocket event stream. It is deliberately thin —
// every operation delegates to the lifecycle manager or the store.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conclave-run/conclave/pkg/database"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/lifecycle"
	"github.com/conclave-run/conclave/pkg/store"
)

// Server handles the HTTP API.
type Server struct {
	manager     *lifecycle.Manager
	store       store.Store
	connManager *events.ConnectionManager
	db          *database.Client // nil when running on the in-memory store
	wsOrigins   []string
	log         *slog.Logger
}

// NewServer wires the API around its collaborators. db may be nil; the
// health endpoint then skips the database probe.
func NewServer(manager *lifecycle.Manager, st store.Store, connManager *events.ConnectionManager, db *database.Client, wsOrigins []string, logger *slog.Logger) *Server {
	return &Server{
		manager:     manager,
		store:       st,
		connManager: connManager,
		db:          db,
		wsOrigins:   wsOrigins,
		log:         logger.With(slog.String("component", "api")),
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)
	r.GET("/api/events/ws", s.handleWS)

	tasks := r.Group("/api/tasks")
	{
		tasks.POST("", s.createTask)
		tasks.GET("/:id", s.getTask)
		tasks.POST("/:id/message", s.postMessage)
		tasks.POST("/:id/pause", s.pauseTask)
		tasks.POST("/:id/restore", s.restoreTask)
		tasks.DELETE("/:id", s.deleteTask)
	}
	return r
}

// requestLogger logs one line per request with method, path, status, and
// latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}

	ctx, cancel := contextWithTimeout(c, 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
