package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"teman-tukang/internal/domain"
	"teman-tukang/internal/repository"
)

// DefaultProfilePhoto es el placeholder de la página de perfil.
const DefaultProfilePhoto = "https://placehold.co/150x150"

// TradespersonService arma la vista de perfil con agregados y ulasan.
type TradespersonService struct {
	tradespeople repository.TradespersonRepository
	reviews      repository.ReviewRepository
	placeholder  string
}

func NewTradespersonService(tradespeople repository.TradespersonRepository, reviews repository.ReviewRepository) *TradespersonService {
	return &TradespersonService{
		tradespeople: tradespeople,
		reviews:      reviews,
		placeholder:  DefaultProfilePhoto,
	}
}

// GetProfile lee siempre del directorio, así que refleja el último agregado confirmado.
func (s *TradespersonService) GetProfile(ctx context.Context, id int64) (domain.TradespersonProfile, error) {
	var (
		t       domain.Tradesperson
		reviews []domain.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		t, err = s.tradespeople.GetByID(gctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTradespersonNotFound
			}
			return fmt.Errorf("%w: get tradesperson: %w", ErrPersistence, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reviews, err = s.reviews.ListByTradesperson(gctx, id)
		if err != nil {
			return fmt.Errorf("%w: list reviews: %w", ErrPersistence, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.TradespersonProfile{}, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	t.Photo = t.PhotoOr(s.placeholder)
	return domain.TradespersonProfile{
		Tradesperson:       t,
		ExperienceItems:    t.ExperienceList(),
		Reviews:            reviews,
		NegativePercentage: domain.NegativePercentage(reviews),
	}, nil
}
