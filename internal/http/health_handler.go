package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teman-tukang/internal/db"
)

type HealthHandler struct {
	logger *zap.Logger
	db     db.Pinger
	index  interface{ IndexSize() int }
}

func NewHealthHandler(logger *zap.Logger, pinger db.Pinger, index interface{ IndexSize() int }) *HealthHandler {
	return &HealthHandler{logger: logger, db: pinger, index: index}
}

// Health maneja GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	indexed := 0
	if h.index != nil {
		indexed = h.index.IndexSize()
	}
	if h.db != nil {
		if err := db.Ping(c.Request.Context(), h.db); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "indexed": indexed})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "indexed": indexed})
}
