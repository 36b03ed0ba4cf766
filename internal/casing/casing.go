// Package casing implements the name-casing rules: simple ASCII
// title-casing, Unicode-aware title-casing with word-boundary resets, and
// the namecase post-processing for particles and Mac/Mc/al- prefixes.
package casing

import (
	"strings"
	"unicode"
)

// nonASCIIHyphens collects the Unicode hyphen/dash variants that should
// fold to an ASCII '-' when they reset capitalization inside a word.
const nonASCIIHyphens = "‐‑‒–—―−－﹘﹣"

// CapitalizeWord title-cases word: uppercase the first letter, lowercase
// the rest. When simple is true the word is known to be pure ASCII
// alphabetic and a fast byte-wise path is used; otherwise each rune is
// mapped with full Unicode case rules, and capitalization resets after
// any character that is neither alphanumeric nor a combining mark (e.g.
// hyphens, apostrophes), so "aa-bb" becomes "Aa-Bb".
func CapitalizeWord(word string, simple bool) string {
	if word == "" {
		return word
	}

	if simple {
		b := []byte(word)
		out := make([]byte, len(b))
		out[0] = toASCIIUpper(b[0])
		for i := 1; i < len(b); i++ {
			out[i] = toASCIILower(b[i])
		}
		return string(out)
	}

	var sb strings.Builder
	sb.Grow(len(word))
	capitalizeNext := true

	for _, r := range word {
		if capitalizeNext {
			mapped := unicode.ToTitle(r)
			sb.WriteRune(mapped)
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				capitalizeNext = false
			}
			continue
		}

		if unicode.IsLetter(r) || unicode.IsDigit(r) || isCombining(r) {
			sb.WriteRune(unicode.ToLower(r))
			continue
		}

		capitalizeNext = true
		if strings.ContainsRune(nonASCIIHyphens, r) {
			sb.WriteByte('-')
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func toASCIIUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func toASCIILower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// isCombining reports whether r is a combining (zero-width) mark that
// should not itself reset word-boundary capitalization.
func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}

// IsMixedCase reports whether s contains both an uppercase and a
// lowercase letter, which the parser treats as a signal that the
// original casing is meaningful when classifying tokens. The parser
// still namecases every word; it does not preserve the typed casing.
func IsMixedCase(s string) bool {
	hasUpper, hasLower := false, false
	for _, r := range s {
		if unicode.IsUpper(r) {
			hasUpper = true
		} else if unicode.IsLower(r) {
			hasLower = true
		}
		if hasUpper && hasLower {
			return true
		}
	}
	return false
}

// macExceptions lists names beginning with "Mac" whose remainder must not
// be re-capitalized after the "Mac" prefix, despite otherwise qualifying.
var macExceptions = map[string]struct{}{
	"Machin":     {},
	"Machlin":    {},
	"Machar":     {},
	"Mackle":     {},
	"Macklin":    {},
	"Mackie":     {},
	"Macevicius": {},
	"Maciulis":   {},
	"Macias":     {},
}

// uncapitalizedParticles are lowercase linking words that are folded back
// to lowercase when they appear as a possible surname particle (e.g. "de"
// in "Juan de la Cruz").
var uncapitalizedParticles = map[string]struct{}{
	"da": {}, "das": {}, "de": {}, "del": {}, "dela": {}, "della": {},
	"dem": {}, "den": {}, "der": {}, "di": {}, "do": {}, "dos": {},
	"du": {}, "el": {}, "la": {}, "le": {}, "les": {}, "lo": {},
	"van": {}, "von": {}, "zu": {}, "zur": {}, "ter": {}, "ten": {},
	"op": {}, "af": {}, "av": {}, "y": {}, "e": {},
}

func capitalizeAfterMac(word string) bool {
	if len(word) <= 4 {
		return false
	}
	if strings.HasSuffix(word, "o") && word != "Macmurdo" {
		return false
	}
	for _, suf := range []string{"a", "c", "i", "z", "j"} {
		if strings.HasSuffix(word, suf) {
			return false
		}
	}
	_, excepted := macExceptions[word]
	return !excepted
}

// Namecase applies CapitalizeWord and then the particle/Mac/Mc/al- rules
// described in the naming conventions this pipeline follows: a word that
// might be a surname particle is lowercased if it's a known particle; a
// "Mac"/"Mc" prefix gets its remainder re-capitalized unless an exception
// applies; and an "Al-" prefix is folded to the lowercase-particle form
// "al-".
func Namecase(word string, asciiAlpha bool, mightBeParticle bool) string {
	result := CapitalizeWord(word, asciiAlpha)

	if mightBeParticle {
		if _, ok := uncapitalizedParticles[strings.ToLower(result)]; ok {
			return strings.ToLower(result)
		}
	}

	switch {
	case strings.HasPrefix(result, "Mac") && capitalizeAfterMac(result):
		return "Mac" + CapitalizeWord(result[3:], asciiAlpha)
	case strings.HasPrefix(result, "Mc") && len(result) > 3:
		return "Mc" + CapitalizeWord(result[2:], asciiAlpha)
	case strings.HasPrefix(result, "Al-") && len(result) > 3:
		return "al-" + result[3:]
	default:
		return result
	}
}
