package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teman-tukang/internal/domain"
)

// ProfileReader es lo que el handler necesita para la vista de perfil.
type ProfileReader interface {
	GetProfile(ctx context.Context, id int64) (domain.TradespersonProfile, error)
}

type TradespersonHandler struct {
	logger   *zap.Logger
	profiles ProfileReader
}

func NewTradespersonHandler(logger *zap.Logger, profiles ProfileReader) *TradespersonHandler {
	return &TradespersonHandler{logger: logger, profiles: profiles}
}

// GetProfile maneja GET /tradespeople/:id.
func (h *TradespersonHandler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tradesperson id", "kind": "validation"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not load tradesperson")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tradesperson": profile})
}
