package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"teman-tukang/internal/domain"
)

// ReviewRepository lee ulasan para mostrarlas en el perfil.
type ReviewRepository interface {
	ListByTradesperson(ctx context.Context, tradespersonID int64) ([]domain.Review, error)
}

type PgReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

// ListByTradesperson ordena de la más reciente a la más antigua.
func (r *PgReviewRepository) ListByTradesperson(ctx context.Context, tradespersonID int64) ([]domain.Review, error) {
	const query = `
		SELECT id, user_id, tradesperson_id, review, rating, sentiment, created_at
		FROM reviews
		WHERE tradesperson_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query, tradespersonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows pgxRows) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var (
			rv        domain.Review
			sentiment string
		)
		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.TradespersonID,
			&rv.Text,
			&rv.Rating,
			&sentiment,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		rv.Sentiment = domain.Sentiment(sentiment)
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
