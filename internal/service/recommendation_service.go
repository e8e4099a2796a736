package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/repository"
	"teman-tukang/internal/textindex"
)

// DefaultMinSimilarity es el umbral mínimo de similitud para recomendar.
const DefaultMinSimilarity = 0.1

// RecommendationOptions ajusta el ranker.
type RecommendationOptions struct {
	MinSimilarity    float64
	PlaceholderPhoto string
	Cache            RecommendationCache
}

// RecommendationService ordena tukang por similitud con una categoría de kerusakan.
// El índice se construye una sola vez; altas o ediciones posteriores no se ven
// hasta reiniciar el proceso.
type RecommendationService struct {
	logger        *zap.Logger
	index         *textindex.Index
	snapshot      []domain.Tradesperson
	minSimilarity float64
	placeholder   string
	cache         RecommendationCache
	fingerprint   string
}

// LoadRecommendationService lee el directorio completo y construye el índice.
func LoadRecommendationService(ctx context.Context, logger *zap.Logger, repo repository.TradespersonRepository, opts RecommendationOptions) (*RecommendationService, error) {
	snapshot, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tradesperson snapshot: %w", err)
	}
	return NewRecommendationService(logger, snapshot, opts), nil
}

// NewRecommendationService indexa snapshot; la fila i corresponde a snapshot[i].
func NewRecommendationService(logger *zap.Logger, snapshot []domain.Tradesperson, opts RecommendationOptions) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	minSim := opts.MinSimilarity
	if minSim <= 0 {
		minSim = DefaultMinSimilarity
	}
	cache := opts.Cache
	if cache == nil {
		cache = noopRecommendationCache{}
	}

	rows := make([]domain.Tradesperson, len(snapshot))
	copy(rows, snapshot)
	docs := make([]string, len(rows))
	for i, t := range rows {
		docs[i] = t.Document()
	}

	s := &RecommendationService{
		logger:        logger,
		index:         textindex.Build(docs),
		snapshot:      rows,
		minSimilarity: minSim,
		placeholder:   opts.PlaceholderPhoto,
		cache:         cache,
		fingerprint:   snapshotFingerprint(rows, minSim),
	}
	logger.Info("tradesperson index built", zap.Int("rows", s.index.Len()), zap.String("fingerprint", s.fingerprint))
	return s
}

// IndexSize devuelve la cantidad de tukang indexados.
func (s *RecommendationService) IndexSize() int { return s.index.Len() }

// Recommend devuelve los tukang con similitud >= umbral, de mayor a menor.
// Los empates conservan el orden del snapshot.
func (s *RecommendationService) Recommend(ctx context.Context, category string) ([]domain.Recommendation, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrMissingCategory
	}

	key := s.cacheKey(category)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	scores := s.index.Similarity(category)
	out := make([]domain.Recommendation, 0)
	for i, score := range scores {
		if score < s.minSimilarity {
			continue
		}
		t := s.snapshot[i]
		out = append(out, domain.Recommendation{
			TradespersonID: t.ID,
			Name:           t.Name,
			Skill:          t.Skill,
			Experience:     t.Experience,
			Photo:          t.PhotoOr(s.placeholder),
			Similarity:     score,
		})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Similarity > out[b].Similarity
	})

	s.cache.Set(ctx, key, out)
	return out, nil
}

func (s *RecommendationService) cacheKey(category string) string {
	return "rec:" + s.fingerprint + ":" + strings.ToLower(category)
}

// snapshotFingerprint identifica el contenido del índice para que dos procesos
// con snapshots distintos no compartan resultados en cache.
func snapshotFingerprint(rows []domain.Tradesperson, minSim float64) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatFloat(minSim, 'g', -1, 64)))
	for _, t := range rows {
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatInt(t.ID, 10)))
		h.Write([]byte{0})
		h.Write([]byte(t.Name))
		h.Write([]byte{0})
		h.Write([]byte(t.Document()))
		h.Write([]byte{0})
		h.Write([]byte(t.Photo))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
