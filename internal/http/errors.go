package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teman-tukang/internal/service"
)

// writeServiceError traduce el tipo de error del servicio a status HTTP.
// Los 5xx no exponen el detalle interno.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error, internalMsg string) {
	kind := service.KindOf(err)
	switch kind {
	case service.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": kind})
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": kind})
	case service.KindRateLimited:
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests", "kind": kind})
	default:
		logger.Error(internalMsg, zap.Error(err), zap.String("kind", string(kind)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg, "kind": kind})
	}
}
