package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/service"
)

// ReviewSubmitter es lo que el handler necesita del servicio de ulasan.
type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, in service.SubmitReviewInput) (domain.Sentiment, error)
}

// ReviewHandler recibe ulasan en JSON o form.
type ReviewHandler struct {
	logger  *zap.Logger
	reviews ReviewSubmitter
}

func NewReviewHandler(logger *zap.Logger, reviews ReviewSubmitter) *ReviewHandler {
	return &ReviewHandler{logger: logger, reviews: reviews}
}

var (
	tradespersonKeys = []string{"tradesperson_id", "tukang_id"}
	reviewTextKeys   = []string{"review", "text", "ulasan"}
)

// SubmitReview maneja POST /reviews.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrIncompleteReview.Error(), "kind": service.KindValidation})
		return
	}

	if claims, ok := GetAuthClaims(c); ok {
		tokenUserID, _ := claims.UserIDInt()
		if draft.UserID == nil {
			draft.UserID = tokenUserID
		} else if id, err := strconv.ParseInt(stringify(draft.UserID), 10, 64); err != nil || id != tokenUserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "user_id does not match token"})
			return
		}
	}

	in, err := draft.Input()
	if err != nil {
		writeServiceError(c, h.logger, err, "invalid review")
		return
	}

	label, err := h.reviews.SubmitReview(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not submit review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sentiment": label})
}

// bindDraft lee el cuerpo JSON o form; devuelve false si el JSON es inválido.
func (h *ReviewHandler) bindDraft(c *gin.Context) (service.ReviewDraft, bool) {
	if c.ContentType() == gin.MIMEJSON {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			h.logger.Warn("invalid review request", zap.Error(err))
			return service.ReviewDraft{}, false
		}
		return service.ReviewDraft{
			UserID:         body["user_id"],
			TradespersonID: firstPresent(body, tradespersonKeys),
			Text:           firstPresent(body, reviewTextKeys),
			Rating:         body["rating"],
		}, true
	}

	form := func(keys ...string) any {
		for _, k := range keys {
			if v, ok := c.GetPostForm(k); ok {
				return v
			}
		}
		return nil
	}
	return service.ReviewDraft{
		UserID:         form("user_id"),
		TradespersonID: form(tradespersonKeys...),
		Text:           form(reviewTextKeys...),
		Rating:         form("rating"),
	}, true
}

func firstPresent(body map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := body[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
