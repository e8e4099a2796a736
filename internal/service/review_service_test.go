package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/sentiment"
)

func newTestReviewService(store *fakeStore, classifier sentiment.Classifier, limiter RateLimiter) *ReviewService {
	return NewReviewService(nil, store, classifier, limiter)
}

func TestSubmitReview_FirstReviewSetsAggregate(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1, Name: "Budi", Skill: "pipa bocor"})
	svc := newTestReviewService(store, &keywordClassifier{}, nil)

	label, err := svc.SubmitReview(context.Background(), SubmitReviewInput{
		UserID: 1, TradespersonID: 1, Text: "tidak memuaskan", Rating: 1,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if label != domain.SentimentNegative {
		t.Fatalf("expected negatif, got %q", label)
	}
	got := store.tradesperson(1)
	if got.Rating != 1 || got.ReviewCount != 1 {
		t.Fatalf("expected rating=1 count=1, got %+v", got)
	}
	if store.reviews[0].Sentiment != domain.SentimentNegative {
		t.Fatalf("expected persisted sentiment negatif, got %q", store.reviews[0].Sentiment)
	}
}

func TestSubmitReview_TwoReviewsAverage(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1, Name: "Budi"})
	svc := newTestReviewService(store, &keywordClassifier{}, nil)
	ctx := context.Background()

	for _, rating := range []int{5, 3} {
		if _, err := svc.SubmitReview(ctx, SubmitReviewInput{UserID: 2, TradespersonID: 1, Text: "kerja rapi", Rating: rating}); err != nil {
			t.Fatalf("submit rating %d: %v", rating, err)
		}
	}
	got := store.tradesperson(1)
	if got.Rating != 4.0 || got.ReviewCount != 2 {
		t.Fatalf("expected rating=4 count=2, got %+v", got)
	}
}

func TestSubmitReview_UnknownTradesperson(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1, Name: "Budi"})
	svc := newTestReviewService(store, &keywordClassifier{}, nil)

	_, err := svc.SubmitReview(context.Background(), SubmitReviewInput{UserID: 1, TradespersonID: 99, Text: "bagus", Rating: 5})
	if !errors.Is(err, ErrTradespersonNotFound) {
		t.Fatalf("expected ErrTradespersonNotFound, got %v", err)
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found kind, got %s", KindOf(err))
	}
	if store.reviewCount() != 0 {
		t.Fatalf("expected review store unchanged")
	}
	if store.rollbacks != 1 || store.commits != 0 {
		t.Fatalf("expected one rollback, got commits=%d rollbacks=%d", store.commits, store.rollbacks)
	}
}

func TestSubmitReview_UpdateFailureRollsBackInsert(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1, Name: "Budi", Rating: 0})
	store.failUpdate = errBoom
	svc := newTestReviewService(store, &keywordClassifier{}, nil)

	_, err := svc.SubmitReview(context.Background(), SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "bagus", Rating: 5})
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, errBoom) {
		t.Fatalf("expected persistence error wrapping boom, got %v", err)
	}
	if KindOf(err) != KindPersistence {
		t.Fatalf("expected persistence kind, got %s", KindOf(err))
	}
	if store.reviewCount() != 0 {
		t.Fatalf("expected inserted review to be rolled back")
	}
	if got := store.tradesperson(1); got.ReviewCount != 0 || got.Rating != 0 {
		t.Fatalf("expected aggregate untouched, got %+v", got)
	}
}

func TestSubmitReview_InsertAndLockFailures(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*fakeStore)
	}{
		{"lock", func(s *fakeStore) { s.failLock = errBoom }},
		{"insert", func(s *fakeStore) { s.failInsert = errBoom }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore(domain.Tradesperson{ID: 1})
			tc.setup(store)
			svc := newTestReviewService(store, &keywordClassifier{}, nil)
			_, err := svc.SubmitReview(context.Background(), SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "ok", Rating: 4})
			if !errors.Is(err, ErrPersistence) {
				t.Fatalf("expected ErrPersistence, got %v", err)
			}
			if store.reviewCount() != 0 {
				t.Fatalf("expected no review persisted")
			}
		})
	}
}

func TestSubmitReview_ConcurrentSubmissionsStayConsistent(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1}, domain.Tradesperson{ID: 2})
	svc := newTestReviewService(store, &keywordClassifier{}, nil)
	ctx := context.Background()

	ratings := []int{5, 4, 3, 2, 1, 5, 5, 4, 3, 1, 2, 5, 4, 4, 3, 5}
	var wg sync.WaitGroup
	errs := make(chan error, len(ratings))
	for i, rating := range ratings {
		wg.Add(1)
		go func(i, rating int) {
			defer wg.Done()
			_, err := svc.SubmitReview(ctx, SubmitReviewInput{
				UserID:         int64(i + 1),
				TradespersonID: 1,
				Text:           fmt.Sprintf("ulasan %d", i),
				Rating:         rating,
			})
			errs <- err
		}(i, rating)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	want := float64(sum) / float64(len(ratings))
	got := store.tradesperson(1)
	if got.ReviewCount != len(ratings) {
		t.Fatalf("expected count %d, got %d", len(ratings), got.ReviewCount)
	}
	if math.Abs(got.Rating-want) > 1e-9 {
		t.Fatalf("expected rating %v, got %v", want, got.Rating)
	}
	if other := store.tradesperson(2); other.ReviewCount != 0 || other.Rating != 0 {
		t.Fatalf("expected untouched tradesperson 2, got %+v", other)
	}
}

func TestSubmitReview_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   SubmitReviewInput
		want error
	}{
		{"missing user", SubmitReviewInput{TradespersonID: 1, Text: "ok", Rating: 3}, ErrIncompleteReview},
		{"missing tradesperson", SubmitReviewInput{UserID: 1, Text: "ok", Rating: 3}, ErrIncompleteReview},
		{"blank text", SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "   ", Rating: 3}, ErrIncompleteReview},
		{"rating zero", SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "ok", Rating: 0}, ErrInvalidRating},
		{"rating six", SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "ok", Rating: 6}, ErrInvalidRating},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore(domain.Tradesperson{ID: 1})
			classifier := &keywordClassifier{}
			svc := newTestReviewService(store, classifier, nil)
			_, err := svc.SubmitReview(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if KindOf(err) != KindValidation {
				t.Fatalf("expected validation kind, got %s", KindOf(err))
			}
			if classifier.calls != 0 || store.commits+store.rollbacks != 0 {
				t.Fatalf("expected no classification nor transaction")
			}
		})
	}
}

func TestSubmitReview_ClassificationFailsClosed(t *testing.T) {
	cases := []struct {
		name       string
		classifier sentiment.Classifier
	}{
		{"classifier error", &keywordClassifier{err: errBoom}},
		{"unexpected label", &keywordClassifier{label: "netral"}},
		{"no classifier", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore(domain.Tradesperson{ID: 1})
			svc := newTestReviewService(store, tc.classifier, nil)
			_, err := svc.SubmitReview(context.Background(), SubmitReviewInput{UserID: 1, TradespersonID: 1, Text: "ok", Rating: 3})
			if !errors.Is(err, sentiment.ErrClassification) {
				t.Fatalf("expected ErrClassification, got %v", err)
			}
			if KindOf(err) != KindClassification {
				t.Fatalf("expected classification kind, got %s", KindOf(err))
			}
			if store.commits+store.rollbacks != 0 {
				t.Fatalf("expected no transaction to start")
			}
		})
	}
}

type countingLimiter struct {
	allow bool
	keys  []string
}

func (l *countingLimiter) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return l.allow
}

func TestSubmitReview_RateLimited(t *testing.T) {
	store := newFakeStore(domain.Tradesperson{ID: 1})
	limiter := &countingLimiter{allow: false}
	classifier := &keywordClassifier{}
	svc := newTestReviewService(store, classifier, limiter)

	_, err := svc.SubmitReview(context.Background(), SubmitReviewInput{UserID: 7, TradespersonID: 1, Text: "ok", Rating: 3})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if KindOf(err) != KindRateLimited {
		t.Fatalf("expected rate_limited kind")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "7" {
		t.Fatalf("expected limiter keyed by user id, got %v", limiter.keys)
	}
	if classifier.calls != 0 {
		t.Fatalf("expected classifier not called")
	}
}
