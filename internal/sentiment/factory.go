package sentiment

import (
	"fmt"

	"go.uber.org/zap"

	"teman-tukang/internal/config"
	"teman-tukang/internal/llm"
)

// NewFromConfig arma el backend configurado en SENTIMENT_BACKEND.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (Classifier, error) {
	switch cfg.SentimentBackend {
	case config.SentimentBackendModel, "":
		clf, err := LoadModel(cfg.SentimentModelPath)
		if err != nil {
			return nil, err
		}
		return clf, nil
	case config.SentimentBackendLLM:
		client := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
		return NewLLMClassifier(client), nil
	default:
		return nil, fmt.Errorf("unknown sentiment backend %q", cfg.SentimentBackend)
	}
}
