package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	SentimentBackendModel = "model"
	SentimentBackendLLM   = "llm"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// JWTSecret vacío deja /reviews sin verificación de token.
	JWTSecret string `env:"JWT_SECRET"`

	SentimentBackend   string `env:"SENTIMENT_BACKEND" envDefault:"model"`
	SentimentModelPath string `env:"SENTIMENT_MODEL_PATH" envDefault:"model/sentiment.json"`
	LLMAPIKey          string `env:"LLM_API_KEY"`
	LLMBaseURL         string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel           string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	RecommendMinSimilarity float64       `env:"RECOMMEND_MIN_SIMILARITY" envDefault:"0.1"`
	RecommendCacheTTL      time.Duration `env:"RECOMMEND_CACHE_TTL" envDefault:"10m"`
	PlaceholderPhotoURL    string        `env:"PLACEHOLDER_PHOTO_URL" envDefault:"https://placehold.co/80x80"`

	ReviewRateWindow time.Duration `env:"REVIEW_RATE_WINDOW" envDefault:"1m"`
	ReviewRateMax    int           `env:"REVIEW_RATE_MAX" envDefault:"5"`

	// CORSAllowedOrigins vacío desactiva CORS.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	c.SentimentBackend = strings.ToLower(strings.TrimSpace(c.SentimentBackend))
	switch c.SentimentBackend {
	case SentimentBackendModel:
		if strings.TrimSpace(c.SentimentModelPath) == "" {
			return fmt.Errorf("SENTIMENT_MODEL_PATH is required for backend %q", c.SentimentBackend)
		}
	case SentimentBackendLLM:
		if strings.TrimSpace(c.LLMAPIKey) == "" {
			return fmt.Errorf("LLM_API_KEY is required for backend %q", c.SentimentBackend)
		}
	default:
		return fmt.Errorf("unknown SENTIMENT_BACKEND %q", c.SentimentBackend)
	}
	if c.RecommendMinSimilarity < 0 || c.RecommendMinSimilarity > 1 {
		return fmt.Errorf("RECOMMEND_MIN_SIMILARITY must be within [0,1], got %v", c.RecommendMinSimilarity)
	}
	return nil
}
