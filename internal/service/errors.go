package service

import (
	"errors"

	"teman-tukang/internal/sentiment"
)

// Kind clasifica errores para que el transporte decida el status.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindClassification Kind = "classification"
	KindPersistence    Kind = "persistence"
	KindRateLimited    Kind = "rate_limited"
)

var (
	ErrMissingCategory      = errors.New("missing category")
	ErrIncompleteReview     = errors.New("incomplete review data")
	ErrInvalidRating        = errors.New("rating must be an integer between 1 and 5")
	ErrTradespersonNotFound = errors.New("tradesperson not found")
	ErrRateLimited          = errors.New("rate limited")
	ErrPersistence          = errors.New("persistence failure")
)

// KindOf devuelve el tipo de un error del servicio; lo desconocido cuenta como persistencia.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrMissingCategory),
		errors.Is(err, ErrIncompleteReview),
		errors.Is(err, ErrInvalidRating):
		return KindValidation
	case errors.Is(err, ErrTradespersonNotFound):
		return KindNotFound
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, sentiment.ErrClassification):
		return KindClassification
	default:
		return KindPersistence
	}
}
