package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"teman-tukang/internal/domain"
)

// RecommendationCache guarda resultados por categoría. Fallas de cache nunca
// rompen la recomendación: se recalcula.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool)
	Set(ctx context.Context, key string, recs []domain.Recommendation)
}

type noopRecommendationCache struct{}

func (noopRecommendationCache) Get(context.Context, string) ([]domain.Recommendation, bool) {
	return nil, false
}

func (noopRecommendationCache) Set(context.Context, string, []domain.Recommendation) {}

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisRecommendationCache struct {
	client redisGetSetter
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisRecommendationCache devuelve nil si no hay cliente.
func NewRedisRecommendationCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) RecommendationCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisRecommendationCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisRecommendationCache) Get(ctx context.Context, key string) ([]domain.Recommendation, bool) {
	ctx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("recommendation cache get failed", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}
	var recs []domain.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		c.logger.Warn("recommendation cache entry corrupt", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return recs, true
}

func (c *redisRecommendationCache) Set(ctx context.Context, key string, recs []domain.Recommendation) {
	raw, err := json.Marshal(recs)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("recommendation cache set failed", zap.Error(err), zap.String("key", key))
	}
}
