// Package translit folds Polish labels to plain ASCII for terminals and
// consumers that cannot render diacritics.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ł and Ł have no canonical decomposition, so NFD leaves them alone.
var undecomposable = strings.NewReplacer("ł", "l", "Ł", "L")

// ASCII strips diacritics from s. "Mężczyzna" becomes "Mezczyzna".
func ASCII(s string) string {
	s = undecomposable.Replace(s)

	// transform.Chain keeps state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
