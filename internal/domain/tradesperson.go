package domain

import (
	"strings"
	"time"
)

// Tradesperson es el perfil de un tukang en el directorio.
// Rating y ReviewCount solo los escribe el agregador de ulasan.
type Tradesperson struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Skill       string    `json:"skill"`
	Experience  string    `json:"experience"`
	Photo       string    `json:"photo,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Document es el texto que representa al tukang en el índice: keahlian + pengalaman.
func (t Tradesperson) Document() string {
	return t.Skill + " " + t.Experience
}

// PhotoOr devuelve la foto o el placeholder si está vacía.
func (t Tradesperson) PhotoOr(placeholder string) string {
	if strings.TrimSpace(t.Photo) == "" {
		return placeholder
	}
	return t.Photo
}

// ExperienceList separa la experiencia por comas descartando entradas vacías.
func (t Tradesperson) ExperienceList() []string {
	parts := strings.Split(t.Experience, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RatingAggregate es el estado derivado del conjunto de ulasan de un tukang.
type RatingAggregate struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

// Recommendation es el resumen que devuelve el ranker.
type Recommendation struct {
	TradespersonID int64   `json:"id"`
	Name           string  `json:"name"`
	Skill          string  `json:"skill"`
	Experience     string  `json:"experience"`
	Photo          string  `json:"photo"`
	Similarity     float64 `json:"similarity"`
}

// TradespersonProfile es la vista de perfil con ulasan y porcentaje negativo.
type TradespersonProfile struct {
	Tradesperson
	ExperienceItems    []string `json:"experience_items"`
	Reviews            []Review `json:"reviews"`
	NegativePercentage float64  `json:"negative_percentage"`
}
