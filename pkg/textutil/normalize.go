package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch prepara un término de búsqueda: minúsculas, sin tildes y
// sin espacios sobrantes. Es la mitad cliente del contrato de búsqueda: las
// consultas aplican unaccent() sobre las columnas comparadas, así "Azúcar" y
// "azucar" encuentran las mismas filas sin importar cómo esté escrito el
// nombre guardado.
func NormalizeSearch(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
