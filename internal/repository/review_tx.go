package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"teman-tukang/internal/domain"
)

// ReviewTx agrupa las operaciones que deben confirmarse juntas al ingresar una ulasan.
type ReviewTx interface {
	// LockTradesperson bloquea la fila del tukang; pgx.ErrNoRows si no existe.
	LockTradesperson(ctx context.Context, id int64) error
	InsertReview(ctx context.Context, review *domain.Review) error
	AggregateRatings(ctx context.Context, tradespersonID int64) (domain.RatingAggregate, error)
	UpdateAggregate(ctx context.Context, tradespersonID int64, agg domain.RatingAggregate) error
}

// ReviewUnitOfWork ejecuta fn dentro de una transacción: commit si fn devuelve nil,
// rollback en cualquier otro caso.
type ReviewUnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx ReviewTx) error) error
}

type PgReviewUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPgReviewUnitOfWork(pool *pgxpool.Pool) *PgReviewUnitOfWork {
	return &PgReviewUnitOfWork{pool: pool}
}

func (u *PgReviewUnitOfWork) WithinTx(ctx context.Context, fn func(tx ReviewTx) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	// no-op después del commit
	defer tx.Rollback(ctx)

	if err := fn(&pgReviewTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type pgReviewTx struct {
	tx pgx.Tx
}

func (t *pgReviewTx) LockTradesperson(ctx context.Context, id int64) error {
	const query = `SELECT id FROM tradespeople WHERE id = $1 FOR UPDATE`
	var locked int64
	return t.tx.QueryRow(ctx, query, id).Scan(&locked)
}

func (t *pgReviewTx) InsertReview(ctx context.Context, review *domain.Review) error {
	const query = `
		INSERT INTO reviews (user_id, tradesperson_id, review, rating, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return t.tx.QueryRow(ctx, query,
		review.UserID,
		review.TradespersonID,
		review.Text,
		review.Rating,
		string(review.Sentiment),
		review.CreatedAt,
	).Scan(&review.ID)
}

// AggregateRatings recalcula desde todas las ulasan, nunca de forma incremental.
func (t *pgReviewTx) AggregateRatings(ctx context.Context, tradespersonID int64) (domain.RatingAggregate, error) {
	const query = `
		SELECT COALESCE(AVG(rating)::float8, 0), COUNT(*)
		FROM reviews
		WHERE tradesperson_id = $1
	`
	var agg domain.RatingAggregate
	err := t.tx.QueryRow(ctx, query, tradespersonID).Scan(&agg.Rating, &agg.ReviewCount)
	return agg, err
}

func (t *pgReviewTx) UpdateAggregate(ctx context.Context, tradespersonID int64, agg domain.RatingAggregate) error {
	const query = `
		UPDATE tradespeople
		SET rating = $1, review_count = $2, updated_at = now()
		WHERE id = $3
	`
	tag, err := t.tx.Exec(ctx, query, agg.Rating, agg.ReviewCount, tradespersonID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
