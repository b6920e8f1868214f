// Package textutil normalización de texto para búsquedas (nombres de producto en pt-BR).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas y sin diacríticos ("Café" -> "cafe").
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		// entrada no normalizable: comparar tal cual en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si s contiene substr ignorando mayúsculas y acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
