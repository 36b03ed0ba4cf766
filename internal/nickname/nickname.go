// Package nickname strips bracketed/quoted nicknames from a name token
// and decides whether two given-name spellings could plausibly name the
// same person once diminutives, feminizations, and truncation are
// accounted for.
package nickname

import (
	"strings"
	"unicode"

	"github.com/dbryar/humanname/internal/transliterate"
)

// diminutiveExceptions lists short names that look like diminutives of a
// longer name but never are, so the diminutive-removal check refuses to
// fold them even when the length test would otherwise allow it.
var diminutiveExceptions = map[string]struct{}{
	"Mary": {}, "Joy": {}, "Roy": {}, "Guy": {}, "Amy": {}, "Troy": {},
}

// finalSyllablesExceptions lists names whose final syllables coincide
// with a shorter name by pure accident of spelling.
var finalSyllablesExceptions = map[string]struct{}{
	"Nathan": {},
}

// namesByIrregularNick maps a nickname directly to the full given names
// it can stand in for, for pairs with no productive lexical relationship
// ("Bob" / "Robert", "Peggy" / "Margaret"). In the original tool this
// table is ingested from an external JSON file at build time; that step
// is out of scope here, so a representative curated subset is embedded
// directly.
var namesByIrregularNick = map[string][]string{
	"Bob": {"Robert"}, "Bobby": {"Robert"}, "Rob": {"Robert"},
	"Bill": {"William"}, "Billy": {"William"}, "Will": {"William"},
	"Jack": {"John"}, "Jackie": {"John", "Jacqueline"},
	"Peggy": {"Margaret"}, "Meg": {"Margaret"}, "Peg": {"Margaret"},
	"Dot": {"Dorothy"}, "Dottie": {"Dorothy"},
	"Ned": {"Edward"}, "Ted": {"Edward", "Theodore"}, "Eddie": {"Edward"},
	"Hank": {"Henry"}, "Chuck": {"Charles"},
	"Ann": {"Agnes"}, "Nan": {"Ann", "Agnes"},
	"Sue": {"Susan"}, "Suzy": {"Susan"},
	"Jim": {"James"}, "Jimmy": {"James"}, "Jamie": {"James"},
	"Tom": {"Thomas"}, "Tommy": {"Thomas"},
	"Dick": {"Richard"}, "Rick": {"Richard"}, "Rich": {"Richard"},
	"Kate": {"Katherine", "Catherine"}, "Kit": {"Katherine", "Christopher"},
	"Nick": {"Nicholas"}, "Nicky": {"Nicholas"},
	"Polly": {"Mary"}, "Molly": {"Mary"},
	"Patty": {"Patricia"}, "Trish": {"Patricia"}, "Trisha": {"Patricia"},
	"Gus": {"Augustus", "Angus"},
	"Fred": {"Alfred", "Frederick"}, "Freddie": {"Frederick", "Alfred"},
	"Al": {"Albert", "Alfred", "Alonzo"}, "Lon": {"Alonzo"},
	"Don": {"Donald"}, "Donnie": {"Donald"},
	"Gerry": {"Gerald", "Geraldine"}, "Jerry": {"Gerald", "Jerome"},
	"Lou": {"Louis", "Louise"}, "Lulu": {"Louise"},
	"Liz": {"Elizabeth"}, "Beth": {"Elizabeth"}, "Betty": {"Elizabeth"},
	"Betsy": {"Elizabeth"}, "Eliza": {"Elizabeth"},
	"Annie": {"Ann", "Luann"},
}

// namesByNickPrefix maps the stem left after stripping a diminutive
// suffix ("-y", "-ie", "-ey") to the full given names it can expand to,
// for cases where a plain prefix match against the full name wouldn't
// otherwise fire.
var namesByNickPrefix = map[string][]string{
	"Kenn": {"Kenneth"},
	"Ann":  {"Anna", "Anne", "Annette", "Luann"},
}

// RegisterIrregular merges additional nickname -> full-name mappings into
// the built-in irregular-nickname table, letting a caller extend coverage
// (e.g. locale-specific nicknames loaded from a config file) without
// forking the package. Names for a key that already exists are added to
// its list rather than replacing it, and a name already listed for that
// key is not added again, so repeating a call changes nothing.
func RegisterIrregular(extra map[string][]string) {
	for nick, fulls := range extra {
		for _, full := range fulls {
			known := false
			for _, have := range namesByIrregularNick[nick] {
				if have == full {
					known = true
					break
				}
			}
			if !known {
				namesByIrregularNick[nick] = append(namesByIrregularNick[nick], full)
			}
		}
	}
}

// StripNickname removes bracketed or quoted nickname segments from
// input, e.g. `John "Jack" Smith` -> `John Smith`, returning input
// unchanged if no nickname delimiter is present. Bracket openers
// ('(', '[', '{', '<') and the "anywhere" quote openers ('“', '«', '‹')
// are recognized wherever they occur; the ASCII quotes and the curly
// single-open quote are only recognized when preceded by a space, so a
// mid-word apostrophe ("D'Angelo") is never mistaken for one. A bracket
// closer doesn't need a trailing space to count; a quote closer does
// (or end-of-string), so a possessive ("Jack's") after an opening quote
// isn't mistaken for a close. An unmatched bracket truncates the string
// at the opener; an unmatched quote is left in place, and the scan
// continues past it. A successful strip recurses on what's left, so
// more than one nickname segment can be removed.
func StripNickname(input string) string {
	open, openIdx, precededBySpace := findNickOpen(input)
	if openIdx < 0 {
		return input
	}

	bracketKind := isBracketOpener(open)
	closeRune := closingFor(open)
	afterOpenIdx := openIdx + len(string(open))
	rest := input[afterOpenIdx:]
	closeIdx := strings.IndexRune(rest, closeRune)

	if closeIdx < 0 {
		if bracketKind {
			before := input[:openIdx]
			if precededBySpace {
				before = strings.TrimRight(before, " ")
			}
			return before
		}
		return input[:afterOpenIdx] + StripNickname(rest)
	}

	afterCloseIdx := afterOpenIdx + closeIdx + len(string(closeRune))
	closerOK := bracketKind || afterCloseIdx == len(input) || input[afterCloseIdx] == ' '
	if !closerOK {
		return input[:afterOpenIdx] + StripNickname(rest)
	}

	before := input[:openIdx]
	if precededBySpace {
		before = strings.TrimRight(before, " ")
	}
	after := strings.TrimLeft(input[afterCloseIdx:], " ")

	var combined string
	switch {
	case before == "":
		combined = after
	case after == "":
		combined = before
	default:
		combined = before + " " + after
	}
	return StripNickname(combined)
}

// bracketPairs and quotePairs are the delimiter pairs strip_nickname
// recognizes: ASCII and curly parens/brackets/braces, plus straight and
// curly quotation marks.
var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}', '<': '>',
}

var quotePairs = map[rune]rune{
	'"': '"', '\'': '\'',
	'“': '”', // “ ”
	'‘': '’', // ‘ ’
	'«': '»', // « »
	'‹': '›', // ‹ ›
}

// spacePrecededQuoteOpeners are the quote openers that only count as a
// nickname delimiter when the preceding character is a space: the
// straight ASCII quotes and the curly single-open, which otherwise
// collide with apostrophes inside a word ("D'Angelo", "O'Brien").
var spacePrecededQuoteOpeners = map[rune]struct{}{
	'"': {}, '\'': {}, '‘': {},
}

func closingFor(open rune) rune {
	if c, ok := bracketPairs[open]; ok {
		return c
	}
	return quotePairs[open]
}

func isBracketOpener(r rune) bool {
	_, ok := bracketPairs[r]
	return ok
}

// findNickOpen returns the first recognized bracket/quote opener in s,
// its byte index, and whether it was immediately preceded by a space, or
// (0, -1, false) if none qualifies.
func findNickOpen(s string) (rune, int, bool) {
	prevSpace := false
	for i, r := range s {
		if isBracketOpener(r) {
			return r, i, prevSpace
		}
		if _, ok := quotePairs[r]; ok {
			if _, needsSpace := spacePrecededQuoteOpeners[r]; !needsSpace || prevSpace {
				return r, i, prevSpace
			}
		}
		prevSpace = r == ' '
	}
	return 0, -1, false
}

// HaveMatchingVariants reports whether a and b could be variant
// spellings of the same given name: exact match, one a prefix of the
// other, a shared irregular-nickname mapping, or one derivable from the
// other by stripping a diminutive suffix or matching final syllables.
func HaveMatchingVariants(a, b string) bool {
	a = transliterate.ToASCIITitlecase(a)
	b = transliterate.ToASCIITitlecase(b)
	if strings.EqualFold(a, b) {
		return true
	}

	for _, va := range variantsOf(a) {
		for _, vb := range variantsOf(b) {
			if variantsMatch(va, vb) {
				return true
			}
		}
	}
	return false
}

// variantsOf returns name together with every full name it could be a
// nickname for, per the irregular and nick-prefix tables.
func variantsOf(name string) []string {
	variants := []string{name}
	if extra, ok := namesByIrregularNick[name]; ok {
		variants = append(variants, extra...)
	}
	if stem, ok := diminutiveStem(name); ok {
		if extra, ok := namesByNickPrefix[stem]; ok {
			variants = append(variants, extra...)
		}
	}
	return variants
}

// diminutiveStem strips a trailing "-y", "-ie", or "-ey" diminutive
// suffix from name, returning the stem left behind.
func diminutiveStem(name string) (string, bool) {
	for _, suffix := range []string{"ie", "ey", "y"} {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix)+1 {
			return name[:len(name)-len(suffix)], true
		}
	}
	return "", false
}

// variantsMatch is the pairwise comparison at the core of
// HaveMatchingVariants: exact equality, a simple feminization
// ("Julius"/"Julia"), a case-insensitive prefix relationship in either
// direction, or one name being a diminutive or final-syllable form of
// the other.
func variantsMatch(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	if isSimpleFeminization(a, b) || isSimpleFeminization(b, a) {
		return true
	}
	if havePrefixMatch(a, b) {
		return true
	}
	if matchesWithoutDiminutive(a, b) || matchesWithoutDiminutive(b, a) {
		return true
	}
	if isFinalSyllablesOf(a, b) || isFinalSyllablesOf(b, a) {
		return true
	}
	return false
}

// havePrefixMatch reports whether the shorter of a, b is a
// case-insensitive alphabetic prefix of the longer, requiring at least
// two letters so single-initial collisions don't count.
func havePrefixMatch(a, b string) bool {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len([]rune(shorter)) < 2 {
		return false
	}
	return casefoldedAlphaPrefixEqual(longer, shorter)
}

// isSimpleFeminization reports whether feminine is the Latinate
// feminine form of masculine, covering the two common endings: "-us"
// swapped for "-a" ("Julius"/"Julia") and "-o" swapped for "-a"
// ("Mario"/"Maria").
func isSimpleFeminization(masculine, feminine string) bool {
	switch {
	case strings.HasSuffix(masculine, "us") && len(masculine) > 2:
		return strings.EqualFold(feminine, masculine[:len(masculine)-2]+"a")
	case strings.HasSuffix(masculine, "o") && len(masculine) > 1:
		return strings.EqualFold(feminine, masculine[:len(masculine)-1]+"a")
	default:
		return false
	}
}

// matchesWithoutDiminutive reports whether nick, once its trailing
// diminutive suffix is removed, equals other or the shorter of the two
// is a prefix of the longer — "Davy" strips to "Dav", a prefix of
// "David"; "Kenny" strips to "Kenn", of which "Ken" is a prefix.
func matchesWithoutDiminutive(nick, other string) bool {
	if _, excepted := diminutiveExceptions[nick]; excepted {
		return false
	}
	stem, ok := diminutiveStem(nick)
	if !ok {
		return false
	}
	if strings.EqualFold(stem, other) {
		return true
	}
	return havePrefixMatch(stem, other)
}

// isFinalSyllablesOf reports whether needle forms the tail end of
// haystack ("Roy" of "Leroy"), guarding against accidental matches by
// requiring needle to start with a consonant (or a short allow-listed
// exception) and excluding names known to collide by coincidence.
func isFinalSyllablesOf(needle, haystack string) bool {
	if _, excepted := finalSyllablesExceptions[haystack]; excepted {
		return false
	}
	nr, hr := []rune(needle), []rune(haystack)
	if len(hr) <= len(nr) || len(nr) < 2 {
		return false
	}
	if !startsWithConsonant(needle) && !strings.HasPrefix(needle, "Ann") && !strings.HasPrefix(haystack, "Mary") {
		return false
	}
	return casefoldedAlphaSuffixEqual(haystack, needle)
}

func startsWithConsonant(s string) bool {
	for _, r := range s {
		r = unicode.ToLower(r)
		if !unicode.IsLetter(r) {
			return false
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return false
		default:
			return true
		}
	}
	return false
}

// casefoldedAlphaPrefixEqual reports whether short is a case-insensitive
// prefix of long when both are compared letter-by-letter, ignoring
// nothing else (both strings are expected to already be alphabetic).
func casefoldedAlphaPrefixEqual(long, short string) bool {
	lr, sr := []rune(long), []rune(short)
	if len(sr) > len(lr) {
		return false
	}
	for i, r := range sr {
		if unicode.ToLower(r) != unicode.ToLower(lr[i]) {
			return false
		}
	}
	return true
}

// casefoldedAlphaSuffixEqual reports whether short is a case-insensitive
// suffix of long.
func casefoldedAlphaSuffixEqual(long, short string) bool {
	lr, sr := []rune(long), []rune(short)
	if len(sr) > len(lr) {
		return false
	}
	offset := len(lr) - len(sr)
	for i, r := range sr {
		if unicode.ToLower(r) != unicode.ToLower(lr[offset+i]) {
			return false
		}
	}
	return true
}
