package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Utterance carries the raw text plus the normalized forms the rules match
// against. Normalized keeps punctuation, Stripped does not.
type Utterance struct {
	Raw        string
	Normalized string
	Stripped   string
}

func NewUtterance(text string) Utterance {
	normalized := strings.ToLower(strings.TrimSpace(text))
	return Utterance{
		Raw:        text,
		Normalized: normalized,
		Stripped:   stripPunctuation(normalized),
	}
}

// stripPunctuation folds diacritics and replaces everything that is not a
// letter, digit or space, then collapses runs of whitespace.
func stripPunctuation(text string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
