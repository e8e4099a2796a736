// Package sentiment clasifica el texto de una ulasan como positif o negatif.
// Los modelos se cargan una vez al arrancar y después solo se leen.
package sentiment

import (
	"context"
	"errors"

	"teman-tukang/internal/domain"
)

// ErrClassification indica que el modelo no pudo producir una etiqueta.
var ErrClassification = errors.New("sentiment classification failed")

// Classifier es el único contrato que el núcleo conoce del modelo de sentimiento.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Sentiment, error)
}

// Vectorizer transforma texto al espacio de términos del clasificador.
type Vectorizer interface {
	Transform(text string) []float64
	Dimension() int
}

// labelFromClass mapea la clase del modelo: 1 es positif, cualquier otra negatif.
func labelFromClass(class int) domain.Sentiment {
	if class == 1 {
		return domain.SentimentPositive
	}
	return domain.SentimentNegative
}
