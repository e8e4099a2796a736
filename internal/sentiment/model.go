package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/textindex"
)

// ModelArtifact es el formato persistido del vectorizer TF-IDF y el
// clasificador lineal binario entrenados fuera de este servicio.
type ModelArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       []float64      `json:"coef"`
	Intercept  float64        `json:"intercept"`
}

// ModelClassifier aplica una función de decisión lineal sobre el vector TF-IDF.
type ModelClassifier struct {
	vectorizer Vectorizer
	coef       []float64
	intercept  float64
}

// LoadModel lee el artefacto JSON desde path.
func LoadModel(path string) (*ModelClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sentiment model %s: %w", path, err)
	}
	var artifact ModelArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("parse sentiment model %s: %w", path, err)
	}
	return NewModelClassifier(artifact)
}

// NewModelClassifier valida el artefacto y arma el clasificador.
func NewModelClassifier(artifact ModelArtifact) (*ModelClassifier, error) {
	vectorizer, err := textindex.NewVectorizer(artifact.Vocabulary, artifact.IDF)
	if err != nil {
		return nil, err
	}
	return NewLinearClassifier(vectorizer, artifact.Coef, artifact.Intercept)
}

// NewLinearClassifier combina cualquier Vectorizer con pesos lineales.
func NewLinearClassifier(vectorizer Vectorizer, coef []float64, intercept float64) (*ModelClassifier, error) {
	if vectorizer == nil {
		return nil, fmt.Errorf("%w: nil vectorizer", textindex.ErrInvalidModel)
	}
	if len(coef) != vectorizer.Dimension() {
		return nil, fmt.Errorf("%w: coef size %d != vocabulary size %d", textindex.ErrInvalidModel, len(coef), vectorizer.Dimension())
	}
	weights := make([]float64, len(coef))
	copy(weights, coef)
	return &ModelClassifier{vectorizer: vectorizer, coef: weights, intercept: intercept}, nil
}

// Classify devuelve negatif para texto vacío sin consultar el modelo.
func (m *ModelClassifier) Classify(_ context.Context, text string) (domain.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.SentimentNegative, nil
	}
	vec := m.vectorizer.Transform(text)
	if len(vec) != len(m.coef) {
		return "", fmt.Errorf("%w: vector size %d != coef size %d", ErrClassification, len(vec), len(m.coef))
	}
	score := m.intercept
	for i, x := range vec {
		score += m.coef[i] * x
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "", fmt.Errorf("%w: non-finite decision score", ErrClassification)
	}
	class := 0
	if score > 0 {
		class = 1
	}
	return labelFromClass(class), nil
}
