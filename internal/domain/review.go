package domain

import "time"

// Sentiment es la etiqueta binaria de una ulasan.
type Sentiment string

const (
	SentimentPositive Sentiment = "positif"
	SentimentNegative Sentiment = "negatif"
)

// Review es una ulasan; se crea una vez y nunca se edita.
type Review struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	TradespersonID int64     `json:"tradesperson_id"`
	Text           string    `json:"review"`
	Rating         int       `json:"rating"`
	Sentiment      Sentiment `json:"sentiment"`
	CreatedAt      time.Time `json:"created_at"`
}

// MeanRating calcula el promedio de estrellas; 0 si no hay ulasan.
func MeanRating(reviews []Review) RatingAggregate {
	if len(reviews) == 0 {
		return RatingAggregate{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RatingAggregate{
		Rating:      float64(sum) / float64(len(reviews)),
		ReviewCount: len(reviews),
	}
}

// NegativePercentage devuelve el porcentaje (0-100) de ulasan negativas.
func NegativePercentage(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	neg := 0
	for _, r := range reviews {
		if r.Sentiment == SentimentNegative {
			neg++
		}
	}
	return float64(neg) * 100 / float64(len(reviews))
}
