package lyrics

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// apostrophes maps typographic apostrophes to ASCII so "don’t" and "don't"
// share a canonical form.
var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Normalize converts a raw token into its canonical word form: NFC composed,
// boundary characters other than letters and apostrophes trimmed, and
// lowercased. Internal apostrophes survive. A token without letters yields "".
func Normalize(token string) string {
	s := apostrophes.Replace(norm.NFC.String(token))
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return ""
	}
	// A Caser keeps state, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}
