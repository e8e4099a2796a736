package textindex

import (
	"regexp"
	"strings"
)

// tokenPattern acepta tokens de dos o más caracteres de palabra (letras, marcas, dígitos, _).
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Tokenize pasa a minúsculas y extrae los tokens del texto.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
