package honorific

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dbryar/humanname/internal/casing"
	"github.com/dbryar/humanname/internal/segment"
)

// twoCharTitles are the only two-character, two-alpha-char tokens allowed
// to end a prefix-title run; anything else that short is more likely an
// initial than a title abbreviation.
var twoCharTitles = map[string]struct{}{
	"mr": {}, "ms": {}, "sr": {}, "dr": {},
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// mightBeTitlePart reports whether word could be one word of a multi-word
// prefix title ("Lt." in "Lt. Col. Smith").
func mightBeTitlePart(word segment.NamePart) bool {
	if word.Counts.Chars < 3 {
		return true
	}
	if word.Category == segment.CategoryName {
		_, known := prefixHonorifics[word.CanonicalForm]
		return known || hasDigit(word.CanonicalForm)
	}
	return true
}

// mightBeLastTitlePart reports whether word could be the final (or only)
// word of a prefix title.
func mightBeLastTitlePart(word segment.NamePart) bool {
	switch {
	case word.Counts.Alpha <= 1:
		return false
	case word.Counts.Alpha == 2 && word.Counts.Chars == 2:
		_, ok := twoCharTitles[strings.ToLower(word.Word)]
		return ok
	default:
		return mightBeTitlePart(word)
	}
}

// isPrefixTitle reports whether the given run of words (in order) could
// together form a single prefix title.
func isPrefixTitle(words []segment.NamePart) bool {
	if len(words) == 0 {
		return false
	}
	last := words[len(words)-1]
	if !mightBeLastTitlePart(last) {
		return false
	}
	for _, w := range words[:len(words)-1] {
		if !mightBeTitlePart(w) {
			return false
		}
	}
	return true
}

// isPostfixTitle reports whether word could be a postfix honorific, given
// whether the context expects a word like this to actually be initials.
func isPostfixTitle(word segment.NamePart, mightBeInitials bool) bool {
	switch word.Category {
	case segment.CategoryName:
		_, known := postfixHonorifics[word.CanonicalForm]
		return known || hasDigit(word.CanonicalForm)
	case segment.CategoryInitials:
		return !mightBeInitials && word.Counts.Alpha > 1
	default:
		return true
	}
}

// IsPostfixHonorific reports whether word, considered on its own (not as
// part of a longer name), is recognizable as a postfix honorific.
func IsPostfixHonorific(word segment.NamePart) bool {
	return isPostfixTitle(word, false)
}

// FindPrefixLen returns the number of leading words in words that form a
// prefix honorific run (possibly zero).
func FindPrefixLen(words []segment.NamePart) int {
	prefixLen := len(words) - 1
	for prefixLen > 0 {
		next := words[prefixLen]
		found := (next.IsNamelike() || next.IsInitials()) && isPrefixTitle(words[:prefixLen])
		if found {
			break
		}
		prefixLen--
	}
	return prefixLen
}

// FindPostfixIndex returns the index of the first word (scanning from the
// end) that begins a run of postfix honorifics/generational suffixes,
// consistent with generationFromSuffix reporting no match for words that
// aren't generational suffixes.
func FindPostfixIndex(words []segment.NamePart, expectInitials bool, generationFromSuffix func(segment.NamePart, bool) bool) int {
	lastNonPostfix := -1
	for i, w := range words {
		if !generationFromSuffix(w, expectInitials) && !isPostfixTitle(w, expectInitials) {
			lastNonPostfix = i
		}
	}

	firstAbbrIndex := len(words)
	for i, w := range words {
		if !w.IsNamelike() && !w.IsInitials() {
			firstAbbrIndex = i
			break
		}
	}

	candidate := 0
	if lastNonPostfix >= 0 {
		candidate = lastNonPostfix + 1
	}
	if firstAbbrIndex < candidate {
		return firstAbbrIndex
	}
	return candidate
}

// CanonicalizePrefix returns the canonical printed form of a prefix
// honorific part.
func CanonicalizePrefix(part segment.NamePart) string {
	switch part.Category {
	case segment.CategoryName:
		if canonical, ok := prefixHonorifics[part.CanonicalForm]; ok {
			return canonical
		}
		return part.CanonicalForm
	case segment.CategoryInitials:
		return canonicalizeInitialsAsHonorific(part, prefixHonorifics, false)
	default:
		return part.Word
	}
}

// CanonicalizeSuffix returns the canonical printed form of a postfix
// honorific part.
func CanonicalizeSuffix(part segment.NamePart) string {
	switch part.Category {
	case segment.CategoryName:
		if canonical, ok := postfixHonorifics[part.CanonicalForm]; ok {
			return canonical
		}
		return part.CanonicalForm
	case segment.CategoryInitials:
		return canonicalizeInitialsAsHonorific(part, postfixHonorifics, true)
	default:
		return part.Word
	}
}

// canonicalizeInitialsAsHonorific handles the Category == Initials case
// shared by both CanonicalizePrefix and CanonicalizeSuffix: if there's
// already punctuation in the token, leave it untouched (formatting is
// assumed intentional); otherwise look up a known canonical form
// case-insensitively, and failing that format as an acronym (with
// trailing periods on prefixes, and on short postfixes only).
func canonicalizeInitialsAsHonorific(part segment.NamePart, table map[string]string, isSuffix bool) string {
	if part.Counts.Chars != part.Counts.Alpha {
		return part.Word
	}

	if part.Counts.Chars == part.Counts.ASCIIAlpha {
		capitalized := casing.CapitalizeWord(part.Word, true)
		if canonical, ok := table[capitalized]; ok {
			return canonical
		}
	}

	letters := strings.ToUpper(part.Word)

	if isSuffix {
		if len(part.Word) <= 2 {
			return withPeriods(letters)
		}
		return letters
	}

	var sb strings.Builder
	for i, r := range letters {
		if i == 0 {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	sb.WriteByte('.')
	return sb.String()
}

func withPeriods(letters string) string {
	var sb strings.Builder
	for _, r := range letters {
		sb.WriteRune(r)
		sb.WriteByte('.')
	}
	return sb.String()
}

// IsNumberedTitle reports whether word looks like a purely numeric
// ordinal token ("1st") that's allowed inside a prefix title run.
func IsNumberedTitle(word string) bool {
	_, err := strconv.Atoi(strings.TrimRight(word, "stndrh"))
	return err == nil && hasDigit(word)
}
