package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/llm"
)

const llmSystemPrompt = `Kamu adalah pengklasifikasi sentimen ulasan jasa tukang.
Balas HANYA dengan JSON: {"sentiment": "positif"} atau {"sentiment": "negatif"}.`

// LLMClassifier delega la clasificación en un LLM compatible con OpenAI.
type LLMClassifier struct {
	client llm.LLMClient
}

func NewLLMClassifier(client llm.LLMClient) *LLMClassifier {
	return &LLMClassifier{client: client}
}

// Classify falla cerrado: cualquier respuesta que no sea una etiqueta conocida es error.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (domain.Sentiment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.SentimentNegative, nil
	}
	raw, err := c.client.Generate(ctx, llmSystemPrompt, "Ulasan:\n"+text)
	if err != nil {
		return "", fmt.Errorf("%w: llm generate: %v", ErrClassification, err)
	}

	payload := extractFirstJSONObject(cleanLLMJSONResponse(raw))
	if payload == "" {
		return "", fmt.Errorf("%w: no json in llm response", ErrClassification)
	}
	var parsed struct {
		Sentiment string `json:"sentiment"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return "", fmt.Errorf("%w: parse llm response: %v", ErrClassification, err)
	}

	switch strings.ToLower(strings.TrimSpace(parsed.Sentiment)) {
	case "positif", "positive", "1":
		return labelFromClass(1), nil
	case "negatif", "negative", "0":
		return labelFromClass(0), nil
	default:
		return "", fmt.Errorf("%w: unknown label %q", ErrClassification, parsed.Sentiment)
	}
}
