package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/repository"
)

// fakeStore simula tradespeople + reviews con transacciones. El mutex se toma
// durante toda la transacción, igual que el lock de fila serializa en Postgres.
type fakeStore struct {
	mu           sync.Mutex
	tradespeople map[int64]domain.Tradesperson
	order        []int64
	reviews      []domain.Review
	nextID       int64

	failLock   error
	failInsert error
	failUpdate error
	listErr    error

	commits   int
	rollbacks int
}

func newFakeStore(people ...domain.Tradesperson) *fakeStore {
	s := &fakeStore{tradespeople: make(map[int64]domain.Tradesperson)}
	for _, p := range people {
		s.tradespeople[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *fakeStore) WithinTx(ctx context.Context, fn func(tx repository.ReviewTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &fakeTx{
		store:        s,
		tradespeople: make(map[int64]domain.Tradesperson, len(s.tradespeople)),
		reviews:      append([]domain.Review(nil), s.reviews...),
		nextID:       s.nextID,
	}
	for id, t := range s.tradespeople {
		tx.tradespeople[id] = t
	}
	if err := fn(tx); err != nil {
		s.rollbacks++
		return err
	}
	s.tradespeople = tx.tradespeople
	s.reviews = tx.reviews
	s.nextID = tx.nextID
	s.commits++
	return nil
}

func (s *fakeStore) ListAll(ctx context.Context) ([]domain.Tradesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Tradesperson, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tradespeople[id])
	}
	return out, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (domain.Tradesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tradespeople[id]
	if !ok {
		return domain.Tradesperson{}, pgx.ErrNoRows
	}
	return t, nil
}

func (s *fakeStore) ListByTradesperson(ctx context.Context, tradespersonID int64) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].TradespersonID == tradespersonID {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}

func (s *fakeStore) tradesperson(id int64) domain.Tradesperson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tradespeople[id]
}

func (s *fakeStore) reviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

type fakeTx struct {
	store        *fakeStore
	tradespeople map[int64]domain.Tradesperson
	reviews      []domain.Review
	nextID       int64
}

func (t *fakeTx) LockTradesperson(ctx context.Context, id int64) error {
	if t.store.failLock != nil {
		return t.store.failLock
	}
	if _, ok := t.tradespeople[id]; !ok {
		return pgx.ErrNoRows
	}
	return nil
}

func (t *fakeTx) InsertReview(ctx context.Context, review *domain.Review) error {
	if t.store.failInsert != nil {
		return t.store.failInsert
	}
	t.nextID++
	review.ID = t.nextID
	t.reviews = append(t.reviews, *review)
	return nil
}

func (t *fakeTx) AggregateRatings(ctx context.Context, tradespersonID int64) (domain.RatingAggregate, error) {
	var own []domain.Review
	for _, r := range t.reviews {
		if r.TradespersonID == tradespersonID {
			own = append(own, r)
		}
	}
	return domain.MeanRating(own), nil
}

func (t *fakeTx) UpdateAggregate(ctx context.Context, tradespersonID int64, agg domain.RatingAggregate) error {
	if t.store.failUpdate != nil {
		return t.store.failUpdate
	}
	p, ok := t.tradespeople[tradespersonID]
	if !ok {
		return pgx.ErrNoRows
	}
	p.Rating = agg.Rating
	p.ReviewCount = agg.ReviewCount
	t.tradespeople[tradespersonID] = p
	return nil
}

// keywordClassifier etiqueta negativo cualquier texto con palabras de queja.
type keywordClassifier struct {
	mu    sync.Mutex
	calls int
	err   error
	label domain.Sentiment
}

func (k *keywordClassifier) Classify(ctx context.Context, text string) (domain.Sentiment, error) {
	k.mu.Lock()
	k.calls++
	k.mu.Unlock()
	if k.err != nil {
		return "", k.err
	}
	if k.label != "" {
		return k.label, nil
	}
	lower := strings.ToLower(text)
	for _, w := range []string{"tidak", "buruk", "kecewa", "lambat"} {
		if strings.Contains(lower, w) {
			return domain.SentimentNegative, nil
		}
	}
	return domain.SentimentPositive, nil
}

var errBoom = errors.New("boom")
