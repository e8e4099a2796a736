package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ReviewDraft es el cuerpo tal como llega (JSON o form), antes de coerción.
type ReviewDraft struct {
	UserID         interface{}
	TradespersonID interface{}
	Text           interface{}
	Rating         interface{}
}

// SubmitReviewInput es una ulasan ya tipada.
type SubmitReviewInput struct {
	UserID         int64
	TradespersonID int64
	Text           string
	Rating         int
}

// Input exige los cuatro campos presentes y coercibles a su tipo.
func (d ReviewDraft) Input() (SubmitReviewInput, error) {
	userID, ok := coerceInt(d.UserID)
	if !ok {
		return SubmitReviewInput{}, ErrIncompleteReview
	}
	tradespersonID, ok := coerceInt(d.TradespersonID)
	if !ok {
		return SubmitReviewInput{}, ErrIncompleteReview
	}
	text, ok := d.Text.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return SubmitReviewInput{}, ErrIncompleteReview
	}
	if d.Rating == nil {
		return SubmitReviewInput{}, ErrIncompleteReview
	}
	rating, ok := coerceInt(d.Rating)
	if !ok {
		return SubmitReviewInput{}, ErrInvalidRating
	}
	return SubmitReviewInput{
		UserID:         userID,
		TradespersonID: tradespersonID,
		Text:           text,
		Rating:         int(rating),
	}, nil
}

func coerceInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		i, err := strconv.ParseInt(s, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
