package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/repository"
	"teman-tukang/internal/sentiment"
)

// ReviewService ingresa ulasan y mantiene rating/review_count del tukang.
type ReviewService struct {
	logger     *zap.Logger
	uow        repository.ReviewUnitOfWork
	classifier sentiment.Classifier
	limiter    RateLimiter
	now        func() time.Time
}

func NewReviewService(logger *zap.Logger, uow repository.ReviewUnitOfWork, classifier sentiment.Classifier, limiter RateLimiter) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		logger:     logger,
		uow:        uow,
		classifier: classifier,
		limiter:    limiter,
		now:        time.Now,
	}
}

// SubmitReview valida, clasifica y persiste la ulasan; el insert y el recálculo
// del agregado se confirman en la misma transacción o no se confirma nada.
func (s *ReviewService) SubmitReview(ctx context.Context, in SubmitReviewInput) (domain.Sentiment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if in.UserID <= 0 || in.TradespersonID <= 0 || in.Text == "" {
		return "", ErrIncompleteReview
	}
	if in.Rating < 1 || in.Rating > 5 {
		return "", ErrInvalidRating
	}
	if s.limiter != nil && !s.limiter.Allow(strconv.FormatInt(in.UserID, 10)) {
		return "", ErrRateLimited
	}

	label, err := s.classify(ctx, in.Text)
	if err != nil {
		s.logger.Error("review classification failed", zap.Error(err), zap.Int64("tradesperson_id", in.TradespersonID))
		return "", err
	}

	review := domain.Review{
		UserID:         in.UserID,
		TradespersonID: in.TradespersonID,
		Text:           in.Text,
		Rating:         in.Rating,
		Sentiment:      label,
		CreatedAt:      s.now().UTC(),
	}

	var agg domain.RatingAggregate
	err = s.uow.WithinTx(ctx, func(tx repository.ReviewTx) error {
		if err := tx.LockTradesperson(ctx, review.TradespersonID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTradespersonNotFound
			}
			return fmt.Errorf("%w: lock tradesperson: %w", ErrPersistence, err)
		}
		if err := tx.InsertReview(ctx, &review); err != nil {
			return fmt.Errorf("%w: insert review: %w", ErrPersistence, err)
		}
		recomputed, err := tx.AggregateRatings(ctx, review.TradespersonID)
		if err != nil {
			return fmt.Errorf("%w: aggregate ratings: %w", ErrPersistence, err)
		}
		if err := tx.UpdateAggregate(ctx, review.TradespersonID, recomputed); err != nil {
			return fmt.Errorf("%w: update aggregate: %w", ErrPersistence, err)
		}
		agg = recomputed
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTradespersonNotFound) {
			return "", err
		}
		if !errors.Is(err, ErrPersistence) {
			err = fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		s.logger.Error("review transaction rolled back", zap.Error(err), zap.Int64("tradesperson_id", in.TradespersonID))
		return "", err
	}

	s.logger.Info("review ingested",
		zap.Int64("review_id", review.ID),
		zap.Int64("tradesperson_id", review.TradespersonID),
		zap.String("sentiment", string(label)),
		zap.Float64("rating", agg.Rating),
		zap.Int("review_count", agg.ReviewCount),
	)
	return label, nil
}

// classify falla cerrado: nunca se inventa una etiqueta.
func (s *ReviewService) classify(ctx context.Context, text string) (domain.Sentiment, error) {
	if s.classifier == nil {
		return "", fmt.Errorf("%w: classifier not configured", sentiment.ErrClassification)
	}
	label, err := s.classifier.Classify(ctx, text)
	if err != nil {
		if !errors.Is(err, sentiment.ErrClassification) {
			err = fmt.Errorf("%w: %w", sentiment.ErrClassification, err)
		}
		return "", err
	}
	if label != domain.SentimentPositive && label != domain.SentimentNegative {
		return "", fmt.Errorf("%w: unexpected label %q", sentiment.ErrClassification, label)
	}
	return label, nil
}
