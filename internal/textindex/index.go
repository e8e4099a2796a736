// Package textindex mantiene el índice TF-IDF de perfiles de tukang
// y responde consultas de similitud coseno.
package textindex

import "math"

// Index guarda una fila por documento en el mismo orden de entrada.
// Se construye una vez y después solo se lee.
type Index struct {
	vectorizer *Vectorizer
	rows       [][]float64
}

// Build ajusta el vectorizer sobre documents y vectoriza cada documento.
// Un corpus vacío produce un índice vacío.
func Build(documents []string) *Index {
	v := Fit(documents)
	rows := make([][]float64, len(documents))
	for i, doc := range documents {
		rows[i] = v.Transform(doc)
	}
	return &Index{vectorizer: v, rows: rows}
}

// Len devuelve la cantidad de filas.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.rows)
}

// Similarity devuelve la similitud coseno de text contra cada fila, en orden de fila.
func (ix *Index) Similarity(text string) []float64 {
	if ix.Len() == 0 {
		return []float64{}
	}
	query := ix.vectorizer.Transform(text)
	scores := make([]float64, len(ix.rows))
	for i, row := range ix.rows {
		scores[i] = Cosine(query, row)
	}
	return scores
}

// Cosine es 0 cuando alguno de los vectores es nulo o las dimensiones difieren.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	// redondeo de coma flotante puede pasar de 1
	if sim > 1 {
		return 1
	}
	return sim
}
