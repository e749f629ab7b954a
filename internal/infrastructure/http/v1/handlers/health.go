package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"protoparts/internal/infrastructure/storage/postgres"
	"protoparts/pkg/logger"
)

const readyTimeout = 2 * time.Second

// Database is what the health endpoints inspect.
type Database interface {
	Ping(ctx context.Context) error
	Stats() postgres.PoolStats
}

// HealthHandler serves the unauthenticated /health probes.
type HealthHandler struct {
	db      Database
	app     string
	version string
}

func NewHealthHandler(db Database, app, version string) *HealthHandler {
	return &HealthHandler{db: db, app: app, version: version}
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready fails with 503 while the database cannot be reached.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	status, code, db := "ok", http.StatusOK, "healthy"
	if err := h.db.Ping(ctx); err != nil {
		logger.Warn(ctx, "readiness check failed", "error", err)
		status, code, db = "error", http.StatusServiceUnavailable, "unhealthy"
	}
	c.JSON(code, gin.H{"status": status, "checks": gin.H{"database": db}})
}

// Info reports the build and the pool usage.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":      h.app,
		"version":  h.version,
		"database": h.db.Stats(),
	})
}
