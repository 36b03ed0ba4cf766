// Package surname locates the surname boundary within a sequence of
// given+surname NameParts, using a closed particle set and the
// Spanish/Portuguese single-letter-conjunction rule.
package surname

import (
	"strings"

	"github.com/dbryar/humanname/internal/segment"
)

var vowellessSurnames = []string{"Ng", "Lv", "Mtz", "Hdz"}

var singleLetterConjunctions = map[string]struct{}{
	"e": {}, "y": {}, "E": {}, "Y": {},
}

// surnamePrefixes is the closed set of particles that, when found as a
// non-final word, mark the start of the surname ("de la Cruz", "van der
// Berg", "bin Laden", "al-Rashid"). This mirrors a nobiliary-particle
// data table; here it's embedded directly as static data rather than
// ingested from an external file at build time.
var surnamePrefixes = map[string]struct{}{
	"a": {}, "abu": {}, "af": {}, "al": {}, "al-": {}, "ap": {}, "ben": {},
	"bin": {}, "bint": {}, "binti": {}, "da": {}, "dal": {}, "dalla": {},
	"das": {}, "de": {}, "degli": {}, "dei": {}, "del": {}, "della": {},
	"delle": {}, "dello": {}, "den": {}, "der": {}, "des": {}, "di": {},
	"do": {}, "dos": {}, "du": {}, "el": {}, "ibn": {}, "la": {}, "las": {},
	"le": {}, "les": {}, "lo": {}, "los": {}, "mac": {}, "mc": {}, "mhic": {},
	"mul": {}, "nic": {}, "o": {}, "op": {}, "ter": {}, "ten": {}, "tho": {},
	"til": {}, "to": {}, "toe": {}, "van": {}, "vande": {}, "vander": {},
	"vanden": {}, "vant": {}, "von": {}, "von der": {}, "zu": {}, "zum": {},
	"zur": {},
}

// RegisterPrefixes merges additional surname particles into the built-in
// closed set, letting a caller extend coverage (e.g. locale-specific
// particles loaded from a config file) without forking the package.
func RegisterPrefixes(extra []string) {
	for _, p := range extra {
		surnamePrefixes[strings.ToLower(p)] = struct{}{}
	}
}

// IsVowellessSurname reports whether word is one of the small closed set
// of real surnames with no ASCII vowel.
func IsVowellessSurname(word string, useCapitalization bool) bool {
	if useCapitalization {
		for _, s := range vowellessSurnames {
			if s == word {
				return true
			}
		}
		return false
	}
	for _, s := range vowellessSurnames {
		if strings.EqualFold(s, word) {
			return true
		}
	}
	return false
}

// FindSurnameIndex returns the index in words (given+surname words, no
// honorifics/suffixes) at which the surname begins.
func FindSurnameIndex(words []segment.NamePart) int {
	if len(words) < 2 {
		return 0
	}

	for i, word := range words[:len(words)-1] {
		key := word.Word
		if word.Category == segment.CategoryName && word.CanonicalForm != "" {
			key = word.CanonicalForm
		}
		if _, ok := surnamePrefixes[strings.ToLower(key)]; ok {
			return i
		}

		if i > 0 {
			if _, ok := singleLetterConjunctions[word.Word]; ok {
				if !words[i-1].IsInitials() && !words[i+1].IsInitials() {
					return i - 1
				}
			}
		}
	}

	return len(words) - 1
}
