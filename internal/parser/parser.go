// Package parser implements the top-level parse pipeline: strip a
// bracketed/quoted nickname, normalize, tokenize, classify and namecase
// every word, peel off prefix/postfix honorifics and a generational
// suffix, and finally locate the surname boundary within what remains.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/dbryar/humanname/internal/casing"
	"github.com/dbryar/humanname/internal/honorific"
	"github.com/dbryar/humanname/internal/nickname"
	"github.com/dbryar/humanname/internal/normalize"
	"github.com/dbryar/humanname/internal/segment"
	"github.com/dbryar/humanname/internal/suffix"
	"github.com/dbryar/humanname/internal/surname"
)

// Parsed is the fully-segmented result of running the parse pipeline
// over a raw name string: every word in its eventual display order,
// plus the indices delimiting each structural region.
type Parsed struct {
	Words            []segment.NamePart
	Nickname         string
	PrefixLen        int // [0, PrefixLen) is the honorific prefix
	SurnameIndex     int // start of the surname run, relative to Words
	SuffixIndex      int // start of trailing honorific/generational suffixes, relative to Words
	GoesByMiddleName bool
}

// Parse runs the full pipeline over raw input. It returns false if no
// surname-bearing name could be extracted at all (e.g. the input is
// empty or entirely punctuation).
//
// A comma splits the input into a leading surname segment and one or
// more trailing segments ("Doe, John", "Doe, II, John", "Smith, John
// Jr."). Every segment — the surname segment and each trailing one — has
// its own prefix/postfix honorifics and generational suffix stripped
// independently before anything is recombined, mirroring
// original_source/src/parse.rs's handle_after_comma: a segment's own
// trailing suffix must never survive only by concatenation, because once
// surname words are appended after it the "contiguous run ending the
// string" assumption postfix detection relies on no longer holds. A
// trailing segment that tokenizes entirely into recognized suffixes/
// honorifics (its core comes back empty) folds into the tail as a
// postfix run; one that doesn't is given/middle-name text and is placed
// ahead of the surname.
func Parse(raw string) (Parsed, bool) {
	stripped := nickname.StripNickname(raw)
	nick := extractNickname(raw, stripped)

	segments := strings.Split(stripped, ",")
	if len(segments) == 1 {
		return parseCore(segments[0], nick)
	}

	trustCapitalization := !isAllOneCase(normalize.Text(stripped))

	surnameSeg := processSegment(strings.TrimSpace(segments[0]), trustCapitalization)
	if len(surnameSeg.core) == 0 {
		return Parsed{}, false
	}
	surnameSeg.core = dropLeadingScriptArtifacts(surnameSeg.core)

	prefixWords := append([]segment.NamePart{}, surnameSeg.prefix...)
	tailWords := append([]segment.NamePart{}, surnameSeg.suffix...)
	var givenWords []segment.NamePart

	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		s := processSegment(seg, trustCapitalization)
		prefixWords = append(prefixWords, s.prefix...)
		if len(s.core) == 0 {
			tailWords = append(tailWords, s.suffix...)
			continue
		}
		givenWords = append(givenWords, s.core...)
		tailWords = append(tailWords, s.suffix...)
	}

	words := make([]segment.NamePart, 0, len(prefixWords)+len(givenWords)+len(surnameSeg.core)+len(tailWords))
	words = append(words, prefixWords...)
	words = append(words, givenWords...)
	words = append(words, surnameSeg.core...)
	words = append(words, tailWords...)

	goesByMiddle := len(givenWords) > 1 && !givenWords[0].IsNamelike() && givenWords[0].IsInitials()

	return Parsed{
		Words:            words,
		Nickname:         nick,
		PrefixLen:        len(prefixWords),
		SurnameIndex:     len(prefixWords) + len(givenWords),
		SuffixIndex:      len(prefixWords) + len(givenWords) + len(surnameSeg.core),
		GoesByMiddleName: goesByMiddle,
	}, true
}

// segmentAffixes is the result of independently stripping a prefix
// honorific run and a postfix honorific/generational-suffix run from one
// comma-delimited segment's tokenized words.
type segmentAffixes struct {
	prefix []segment.NamePart
	core   []segment.NamePart
	suffix []segment.NamePart
}

// processSegment tokenizes, namecases, and peels prefix/postfix affixes
// off a single comma-delimited segment in isolation, so a segment's own
// trailing suffix or leading honorific never gets mixed into another
// segment's span once the pieces are recombined.
func processSegment(raw string, trustCapitalization bool) segmentAffixes {
	words := tokenizeAndNamecase(raw, trustCapitalization)
	if len(words) == 0 {
		return segmentAffixes{}
	}
	prefixWords, core, tailWords := stripAffixes(words)
	return segmentAffixes{prefix: prefixWords, core: core, suffix: tailWords}
}

func tokenizeAndNamecase(raw string, trustCapitalization bool) []segment.NamePart {
	text := normalize.Text(raw)
	words := segment.Tokenize(text, trustCapitalization)
	for i := range words {
		words[i] = namecase(words[i], trustCapitalization)
	}
	return words
}

// stripAffixes locates and canonicalizes a leading prefix-honorific run
// and a trailing postfix-honorific/generational-suffix run within an
// already-tokenized, already-namecased word list, returning the three
// regions as subslices of words (canonicalization is applied in place on
// the shared backing array).
func stripAffixes(words []segment.NamePart) (prefixWords, core, tailWords []segment.NamePart) {
	prefixLen := honorific.FindPrefixLen(words)
	for i := 0; i < prefixLen; i++ {
		words[i].CanonicalForm = honorific.CanonicalizePrefix(words[i])
	}
	prefixWords = words[:prefixLen]
	body := words[prefixLen:]
	if len(body) == 0 {
		return prefixWords, nil, nil
	}

	postfixOffset := honorific.FindPostfixIndex(body, expectInitialsInSuffix(body), generationFromSuffix)
	tailWords = body[postfixOffset:]
	for i := range tailWords {
		if suffix.IsSuffix(tailWords[i]) {
			tailWords[i].CanonicalForm = suffix.Namecase(tailWords[i])
		} else {
			tailWords[i].CanonicalForm = honorific.CanonicalizeSuffix(tailWords[i])
		}
	}

	return prefixWords, body[:postfixOffset], tailWords
}

// dropLeadingScriptArtifacts removes a leading run of single-rune,
// non-ASCII tokens from a comma-delimited surname segment's core words.
// A name occasionally carries a leading native-script rendering of the
// surname ahead of its Latin form ("鈴木 Velasquez y Garcia, Juan"); CJK
// resegmentation (internal/segment's worthResegmenting path) yields one
// CategoryInitials token per ideograph, which would otherwise end up
// glued onto the front of the Latin surname. Only a strictly leading run
// is dropped, and at least one word is always left behind.
func dropLeadingScriptArtifacts(core []segment.NamePart) []segment.NamePart {
	i := 0
	for i < len(core)-1 && isNonASCIISingleRune(core[i].Word) {
		i++
	}
	return core[i:]
}

func isNonASCIISingleRune(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return size == len(word) && r >= utf8.RuneSelf
}

func parseCore(raw, nick string) (Parsed, bool) {
	trustCapitalization := !isAllOneCase(normalize.Text(raw))
	words := tokenizeAndNamecase(raw, trustCapitalization)
	if len(words) == 0 {
		return Parsed{}, false
	}

	prefixWords, core, _ := stripAffixes(words)
	if len(core) == 0 {
		return Parsed{}, false
	}

	surnameIdx := surname.FindSurnameIndex(core)

	// When the first given-name word is only an initial but there's a
	// full middle name before the surname, the person conventionally
	// goes by that middle name ("J. Robert Oppenheimer" goes by Robert).
	goesByMiddle := !core[0].IsNamelike() && core[0].IsInitials() && surnameIdx > 1

	return Parsed{
		Words:            words,
		Nickname:         nick,
		PrefixLen:        len(prefixWords),
		SurnameIndex:     len(prefixWords) + surnameIdx,
		SuffixIndex:      len(prefixWords) + len(core),
		GoesByMiddleName: goesByMiddle,
	}, true
}

// extractNickname returns the text removed by StripNickname, with its
// surrounding bracket/quote delimiters trimmed, or "" if nothing was
// stripped.
func extractNickname(raw, stripped string) string {
	if raw == stripped {
		return ""
	}
	rawWords := strings.Fields(raw)
	strippedSet := make(map[string]int)
	for _, w := range strings.Fields(stripped) {
		strippedSet[w]++
	}
	var removed []string
	for _, w := range rawWords {
		if strippedSet[w] > 0 {
			strippedSet[w]--
			continue
		}
		removed = append(removed, w)
	}
	return strings.Trim(strings.Join(removed, " "), "()[]{}<>\"'“”‘’«»‹›")
}

func isAllOneCase(s string) bool {
	return !casing.IsMixedCase(s)
}

// namecase fills in a word's CanonicalForm. Name, initials and
// abbreviation words run through casing.Namecase (title-casing plus the
// particle/Mac/Mc/al- rules); any other category is left as typed.
func namecase(part segment.NamePart, trustCapitalization bool) segment.NamePart {
	asciiAlpha := part.Counts.Chars == part.Counts.ASCIIAlpha
	switch part.Category {
	case segment.CategoryName:
		part.CanonicalForm = casing.Namecase(part.Word, asciiAlpha, true)
	case segment.CategoryInitials, segment.CategoryAbbreviation:
		// Title-case rather than uppercase so short ambiguous tokens
		// ("JR", "DR") still match the title-case honorific/suffix
		// tables; a single-letter conjunction ("y", "e") is folded to
		// lowercase like any other particle.
		part.CanonicalForm = casing.Namecase(part.Word, asciiAlpha, true)
	default:
		part.CanonicalForm = part.Word
	}
	return part
}

// expectInitialsInSuffix reports whether body has at least two words and
// opens with an initial, in which case initials-like tokens at its end
// are taken as more initials rather than a postfix honorific; used to
// disambiguate short all-caps tokens.
func expectInitialsInSuffix(body []segment.NamePart) bool {
	if len(body) < 2 {
		return false
	}
	return body[0].IsInitials()
}

// generationFromSuffix reports whether part is a recognized generational
// suffix (Jr, Sr, II-V, 2nd, ...), the callback honorific.FindPostfixIndex
// needs without importing the suffix package directly.
func generationFromSuffix(part segment.NamePart, expectInitials bool) bool {
	if expectInitials && part.IsInitials() {
		return false
	}
	return suffix.IsSuffix(part)
}
