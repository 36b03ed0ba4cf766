// Package transliterate folds non-ASCII letters to their closest ASCII
// equivalent so that scripts can be compared after normalization, e.g.
// matching "José" against "Jose" or "Müller" against "Muller".
package transliterate

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/mozillazg/go-unidecode"
)

// ToASCII folds s to its closest ASCII spelling. Already-ASCII input is
// returned unchanged.
func ToASCII(s string) string {
	if IsASCII(s) {
		return s
	}
	return unidecode.Unidecode(s)
}

// ToASCIITitlecase folds s to ASCII and title-cases the first letter of
// each run of letters, matching the casing convention namecasing expects
// for transliterated words.
func ToASCIITitlecase(s string) string {
	folded := ToASCII(s)
	var b strings.Builder
	b.Grow(len(folded))
	atWordStart := true
	for _, r := range folded {
		switch {
		case !unicode.IsLetter(r):
			atWordStart = true
			b.WriteRune(r)
		case atWordStart:
			b.WriteRune(unicode.ToUpper(r))
			atWordStart = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// IsASCII reports whether s contains only ASCII bytes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= unicode.MaxASCII {
			return false
		}
	}
	return true
}

// DetectScriptHint returns the ISO 639-3 code of the language whatlanggo
// detects in s (e.g. "cmn", "jpn", "kor"; non-ASCII Latin-script text gets
// a code too), or "" when s is pure ASCII or the language is
// undetermined. It's advisory only: callers use it to
// decide whether word-level resegmentation is worth attempting, never as
// a basis for transliteration itself.
func DetectScriptHint(s string) string {
	if IsASCII(s) {
		return ""
	}
	info := whatlanggo.DetectLang(s)
	if info == whatlanggo.Und {
		return ""
	}
	return info.Iso6393()
}
