package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teman-tukang/internal/domain"
)

// Recommender es lo que el handler necesita del ranker.
type Recommender interface {
	Recommend(ctx context.Context, category string) ([]domain.Recommendation, error)
}

// RecommendationHandler expone el ranker de tukang.
type RecommendationHandler struct {
	logger *zap.Logger
	recs   Recommender
}

func NewRecommendationHandler(logger *zap.Logger, recs Recommender) *RecommendationHandler {
	return &RecommendationHandler{logger: logger, recs: recs}
}

// Recommend maneja GET /recommendations?category=... (alias: jenis).
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	category := c.Query("category")
	if strings.TrimSpace(category) == "" {
		category = c.Query("jenis")
	}

	recs, err := h.recs.Recommend(c.Request.Context(), category)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not compute recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":        strings.TrimSpace(category),
		"recommendations": recs,
	})
}

// ListDamageCategories maneja GET /damage-categories.
func ListDamageCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.DamageCategories})
}
