package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"teman-tukang/internal/config"
	"teman-tukang/internal/db"
	apihttp "teman-tukang/internal/http"
	"teman-tukang/internal/repository"
	"teman-tukang/internal/sentiment"
	"teman-tukang/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	classifier, err := sentiment.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal("sentiment classifier", zap.Error(err), zap.String("backend", cfg.SentimentBackend))
	}

	var (
		limiter  service.RateLimiter
		recCache service.RecommendationCache
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, cfg.ReviewRateWindow, cfg.ReviewRateMax)
			recCache = service.NewRedisRecommendationCache(redisClient, cfg.RecommendCacheTTL, logger)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(cfg.ReviewRateWindow, cfg.ReviewRateMax)
	}

	tradespersonRepo := repository.NewPgTradespersonRepository(pool)
	reviewRepo := repository.NewPgReviewRepository(pool)
	reviewUoW := repository.NewPgReviewUnitOfWork(pool)

	recSvc, err := service.LoadRecommendationService(ctx, logger, tradespersonRepo, service.RecommendationOptions{
		MinSimilarity:    cfg.RecommendMinSimilarity,
		PlaceholderPhoto: cfg.PlaceholderPhotoURL,
		Cache:            recCache,
	})
	if err != nil {
		logger.Fatal("build recommendation index", zap.Error(err))
	}
	reviewSvc := service.NewReviewService(logger, reviewUoW, classifier, limiter)
	tradespersonSvc := service.NewTradespersonService(tradespersonRepo, reviewRepo)

	var verifier *service.TokenVerifier
	if cfg.JWTSecret != "" {
		verifier = service.NewTokenVerifier(cfg.JWTSecret)
	} else {
		logger.Warn("jwt secret not configured; POST /reviews is unauthenticated")
	}

	router := apihttp.NewRouter(
		logger,
		verifier,
		cfg.CORSAllowedOrigins,
		apihttp.NewRecommendationHandler(logger, recSvc),
		apihttp.NewReviewHandler(logger, reviewSvc),
		apihttp.NewTradespersonHandler(logger, tradespersonSvc),
		apihttp.NewHealthHandler(logger, pool, recSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("sentiment_backend", cfg.SentimentBackend),
		zap.Int("indexed_tradespeople", recSvc.IndexSize()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
