package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"teman-tukang/internal/domain"
)

// TradespersonRepository define el acceso de lectura al directorio de tukang.
// El CRUD de administración vive fuera de este servicio.
type TradespersonRepository interface {
	ListAll(ctx context.Context) ([]domain.Tradesperson, error)
	GetByID(ctx context.Context, id int64) (domain.Tradesperson, error)
}

// PgTradespersonRepository implementa TradespersonRepository usando pgxpool.
type PgTradespersonRepository struct {
	pool *pgxpool.Pool
}

func NewPgTradespersonRepository(pool *pgxpool.Pool) *PgTradespersonRepository {
	return &PgTradespersonRepository{pool: pool}
}

const tradespersonColumns = `id, name, skill, experience, photo, rating, review_count, created_at, updated_at`

// ListAll devuelve el snapshot ordenado por id; el índice depende de este orden.
func (r *PgTradespersonRepository) ListAll(ctx context.Context) ([]domain.Tradesperson, error) {
	const query = `
		SELECT ` + tradespersonColumns + `
		FROM tradespeople
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTradespeople(rows)
}

func (r *PgTradespersonRepository) GetByID(ctx context.Context, id int64) (domain.Tradesperson, error) {
	const query = `
		SELECT ` + tradespersonColumns + `
		FROM tradespeople
		WHERE id = $1
	`
	t, err := scanTradesperson(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Tradesperson{}, err
	}
	return t, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTradesperson(row rowScanner) (domain.Tradesperson, error) {
	var (
		t     domain.Tradesperson
		photo *string
	)
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Skill,
		&t.Experience,
		&photo,
		&t.Rating,
		&t.ReviewCount,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return domain.Tradesperson{}, err
	}
	if photo != nil {
		t.Photo = *photo
	}
	return t, nil
}

func scanTradespeople(rows pgxRows) ([]domain.Tradesperson, error) {
	out := make([]domain.Tradesperson, 0)
	for rows.Next() {
		t, err := scanTradesperson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// pgxRows es la porción de pgx.Rows que usan los scanners; simplifica tests.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
}
