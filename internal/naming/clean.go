package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var sepReplacer = strings.NewReplacer(".", " ", "_", " ")

// CleanTitle normalizes an extracted title substring: dots and
// underscores become spaces, anything that is not a letter, digit,
// whitespace, or hyphen is dropped, words are title-cased, and runs of
// whitespace collapse to single spaces with the ends trimmed.
func CleanTitle(s string) string {
	s = sepReplacer.Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			return r
		}
		return -1
	}, s)
	// cases.Caser carries transform state, so build one per call rather
	// than sharing a package-level instance across goroutines.
	s = cases.Title(language.English).String(s)
	return strings.Join(strings.Fields(s), " ")
}
