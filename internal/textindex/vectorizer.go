package textindex

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Vectorizer transforma texto en un vector TF-IDF normalizado (L2).
// Una vez ajustado es inmutable y seguro para uso concurrente.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

var ErrInvalidModel = errors.New("invalid vectorizer model")

// Fit aprende vocabulario e IDF suavizado del corpus:
// idf(t) = ln((1+n)/(1+df(t))) + 1.
func Fit(corpus []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// NewVectorizer reconstruye un vectorizer ya entrenado (p.ej. cargado de un artefacto).
func NewVectorizer(vocabulary map[string]int, idf []float64) (*Vectorizer, error) {
	if len(vocabulary) != len(idf) {
		return nil, fmt.Errorf("%w: vocabulary size %d != idf size %d", ErrInvalidModel, len(vocabulary), len(idf))
	}
	vocab := make(map[string]int, len(vocabulary))
	for term, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, fmt.Errorf("%w: term %q has index %d out of range", ErrInvalidModel, term, idx)
		}
		vocab[term] = idx
	}
	weights := make([]float64, len(idf))
	copy(weights, idf)
	return &Vectorizer{vocabulary: vocab, idf: weights}, nil
}

// Dimension es el tamaño del vocabulario.
func (v *Vectorizer) Dimension() int { return len(v.idf) }

// Transform usa el vocabulario ajustado; los términos desconocidos pesan 0.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range Tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	for i := range vec {
		if vec[i] != 0 {
			vec[i] *= v.idf[i]
		}
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
}
