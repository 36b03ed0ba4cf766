// Package normalize folds raw name text into the canonical NFKD form the
// rest of the pipeline assumes: NFKD-decomposed, with every Unicode
// whitespace character mapped to a single ASCII space.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text returns s in canonical form. When s is already NFKD and uses only
// ASCII space for whitespace, it is returned unchanged (no allocation);
// otherwise whitespace is folded to ASCII space first and the result is
// NFKD-decomposed into a new string.
func Text(s string) string {
	if norm.NFKD.IsNormalString(s) && onlyASCIISpace(s) {
		return s
	}
	return norm.NFKD.String(foldWhitespace(s))
}

// IsNormal reports whether s is already in the canonical form Text would
// produce, without doing any work beyond checking.
func IsNormal(s string) bool {
	return norm.NFKD.IsNormalString(s) && onlyASCIISpace(s)
}

func foldWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' {
			return r
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func onlyASCIISpace(s string) bool {
	for _, r := range s {
		if r != ' ' && unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
