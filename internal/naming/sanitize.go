package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeTitle turns a display title into a file-name token: spaces become
// dots and anything that is not a letter, a digit or a dot is dropped. The
// title is NFC-composed first so accented letters survive as single runes.
// Runs of dots collapse and leading/trailing dots are trimmed, so the result
// never names a hidden file.
func SanitizeTitle(title string) string {
	title = norm.NFC.String(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(title))
	lastDot := true
	for _, r := range title {
		switch {
		case r == ' ' || r == '.':
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDot = false
		}
	}
	return strings.TrimRight(b.String(), ".")
}
