// Package name parses free-form human-name strings into a structured,
// immutable Name value and decides whether two such values plausibly
// denote the same person.
package name

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/dbryar/humanname/internal/nickname"
	"github.com/dbryar/humanname/internal/normalize"
	"github.com/dbryar/humanname/internal/parser"
	"github.com/dbryar/humanname/internal/suffix"
)

// minSurnameCharMatch is the minimum number of trailing case-folded
// alphabetic characters two surnames must share for a partial (one is a
// suffix of the other) match to count as consistent.
const minSurnameCharMatch = 4

// minGivenNameCharMatch is the minimum shared-prefix length for two
// given/middle name spellings to be treated as the same word.
const minGivenNameCharMatch = 3

// word is one given or middle name word, remembering whether it was
// spelled out or only ever an initial.
type word struct {
	canonical string
	spelled   bool
}

func (w word) initial() rune {
	for _, r := range w.canonical {
		return unicode.ToUpper(r)
	}
	return 0
}

// Name is a parsed, normalized human name. It's built once by Parse and
// never mutated afterward; every accessor reads directly from the
// value's own fields, so a *Name is safe to share across goroutines.
type Name struct {
	given              []word
	surnameWords       []string
	generationalSuffix string
	honorificPrefix    string
	honorificSuffix    string
	goesByMiddleName   bool
}

// Parse classifies s into a structured Name, returning ok=false if s
// doesn't contain at least one given initial and one surname word.
func Parse(s string) (*Name, bool) {
	parsed, ok := parser.Parse(s)
	if !ok {
		return nil, false
	}

	givenParts := parsed.Words[parsed.PrefixLen:parsed.SurnameIndex]
	if len(givenParts) == 0 {
		return nil, false
	}
	surnameParts := parsed.Words[parsed.SurnameIndex:parsed.SuffixIndex]
	if len(surnameParts) == 0 {
		return nil, false
	}
	tailParts := parsed.Words[parsed.SuffixIndex:]
	prefixParts := parsed.Words[:parsed.PrefixLen]

	n := &Name{
		goesByMiddleName: parsed.GoesByMiddleName,
	}
	for _, p := range givenParts {
		n.given = append(n.given, word{canonical: p.CanonicalForm, spelled: p.IsNamelike()})
	}
	for _, p := range surnameParts {
		n.surnameWords = append(n.surnameWords, p.CanonicalForm)
	}

	var honorificTail []string
	for _, p := range tailParts {
		if suffix.IsSuffix(p) && n.generationalSuffix == "" {
			n.generationalSuffix = p.CanonicalForm
			continue
		}
		honorificTail = append(honorificTail, p.CanonicalForm)
	}
	n.honorificSuffix = strings.Join(honorificTail, ", ")

	var prefixWords []string
	for _, p := range prefixParts {
		prefixWords = append(prefixWords, p.CanonicalForm)
	}
	n.honorificPrefix = strings.Join(prefixWords, " ")

	return n, true
}

// Surname returns the full, possibly multi-word, surname.
func (n *Name) Surname() string {
	return strings.Join(n.surnameWords, " ")
}

// GivenName returns the first given-name word, or "" if the person is
// only ever referred to by an initial there.
func (n *Name) GivenName() string {
	if n.given[0].spelled {
		return n.given[0].canonical
	}
	return ""
}

// MiddleName returns the first spelled-out middle name, or "" if none
// of the middle positions were spelled out.
func (n *Name) MiddleName() string {
	for _, w := range n.given[1:] {
		if w.spelled {
			return w.canonical
		}
	}
	return ""
}

// MiddleNames returns every spelled-out middle given name, space
// joined, or "" if there are none.
func (n *Name) MiddleNames() string {
	var spelled []string
	for _, w := range n.given[1:] {
		if w.spelled {
			spelled = append(spelled, w.canonical)
		}
	}
	return strings.Join(spelled, " ")
}

// FirstInitial returns the upper-case initial of the first given word.
func (n *Name) FirstInitial() rune {
	return n.given[0].initial()
}

// MiddleInitials returns the concatenated initials of every given word
// after the first, in order, with no separators ("AQ").
func (n *Name) MiddleInitials() string {
	var sb strings.Builder
	for _, w := range n.given[1:] {
		sb.WriteRune(w.initial())
	}
	return sb.String()
}

// Initials returns the full ordered initials string: first initial
// followed by the middle initials.
func (n *Name) Initials() string {
	return string(n.FirstInitial()) + n.MiddleInitials()
}

// GoesByMiddleName reports whether the first given name is only ever an
// initial while a later given/middle name was spelled out in full.
func (n *Name) GoesByMiddleName() bool {
	return n.goesByMiddleName
}

// GenerationalSuffix returns the canonical generation marker ("Jr.",
// "III"), or "" if none was present.
func (n *Name) GenerationalSuffix() string {
	return n.generationalSuffix
}

// HonorificPrefix returns the canonical prefix honorific ("Dr.", "Lt.
// Col."), or "" if none was present.
func (n *Name) HonorificPrefix() string {
	return n.honorificPrefix
}

// HonorificSuffix returns the canonical postfix honorific(s) other than
// the generational suffix ("Ph.D.", "Esq."), or "" if none was present.
func (n *Name) HonorificSuffix() string {
	return n.honorificSuffix
}

// DisplayShort renders the name as "J. Doe".
func (n *Name) DisplayShort() string {
	return string(n.FirstInitial()) + ". " + n.Surname()
}

// DisplayFull renders the name in its most complete canonical form,
// e.g. "Dr. John Q. Doe Jr., Ph.D.".
func (n *Name) DisplayFull() string {
	var parts []string
	if n.honorificPrefix != "" {
		parts = append(parts, n.honorificPrefix)
	}
	parts = append(parts, n.givenDisplayWord(0))
	for i := range n.given[1:] {
		parts = append(parts, n.givenDisplayWord(i+1))
	}
	parts = append(parts, n.Surname())
	if n.generationalSuffix != "" {
		parts = append(parts, n.generationalSuffix)
	}

	out := strings.Join(parts, " ")
	if n.honorificSuffix != "" {
		out += ", " + n.honorificSuffix
	}
	return out
}

func (n *Name) givenDisplayWord(i int) string {
	w := n.given[i]
	if w.spelled {
		return w.canonical
	}
	return string(w.initial()) + "."
}

// SurnameHash returns a hash over the last minSurnameCharMatch
// case-folded alphabetic characters of the surname (read right to
// left). It's intentionally lossy: any two names that could compare
// consistent under ConsistentWith are guaranteed to hash equal, at the
// cost of frequent unrelated collisions. It must never be used as an
// identity key.
func (n *Name) SurnameHash() uint64 {
	tail := reversedAlpha(n.Surname())
	if len(tail) > minSurnameCharMatch {
		tail = tail[:minSurnameCharMatch]
	}
	h := fnv.New64a()
	h.Write([]byte(string(tail)))
	return h.Sum64()
}

// ConsistentWith reports whether n and other could plausibly denote the
// same person. The relation is reflexive and symmetric but not
// transitive, and must never be used as the basis for a map/set
// identity key.
func (n *Name) ConsistentWith(other *Name) bool {
	if !initialsConsistent(n, other) {
		return false
	}
	if !surnameConsistent(n.Surname(), other.Surname()) {
		return false
	}
	if !givenNamesConsistent(n, other) {
		return false
	}
	return suffixConsistent(n, other)
}

func initialsConsistent(a, b *Name) bool {
	if a.goesByMiddleName == b.goesByMiddleName {
		if a.FirstInitial() != b.FirstInitial() {
			return false
		}
		mi, mj := a.MiddleInitials(), b.MiddleInitials()
		if mi == "" || mj == "" {
			return true
		}
		return strings.Contains(mi, mj) || strings.Contains(mj, mi)
	}

	authoritative, other := a.Initials(), b.Initials()
	if b.goesByMiddleName {
		authoritative, other = b.Initials(), a.Initials()
	}
	return strings.Contains(authoritative, other)
}

// reversedAlpha returns the case-folded alphabetic characters of s, with
// spaces and punctuation removed, read back to front.
func reversedAlpha(s string) []rune {
	var alpha []rune
	for _, r := range s {
		if unicode.IsLetter(r) {
			alpha = append(alpha, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(alpha)-1; i < j; i, j = i+1, j-1 {
		alpha[i], alpha[j] = alpha[j], alpha[i]
	}
	return alpha
}

// surnameConsistent compares two surnames' alphabetic characters from
// the right, treating word boundaries within each surname as erased. An
// exact match at every position is always consistent; so is one
// surname being a proper trailing match of the other, provided at least
// minSurnameCharMatch characters matched ("Gayo" within "Iria del Río
// Gayo").
func surnameConsistent(a, b string) bool {
	ra, rb := reversedAlpha(a), reversedAlpha(b)
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return false
	}
	for i, r := range shorter {
		if r != longer[i] {
			return false
		}
	}
	if len(shorter) == len(longer) {
		return true
	}
	return len(shorter) >= minSurnameCharMatch
}

// givenNamesConsistent compares the aligned given/middle words of a and
// b wherever both sides spelled a word out at the same position: each
// such pair must be equal (case-folded) or one a prefix of the other
// with a shared length of at least minGivenNameCharMatch. Positions
// where either side is only an initial are skipped here since the
// initial itself was already checked by initialsConsistent.
func givenNamesConsistent(a, b *Name) bool {
	n := len(a.given)
	if len(b.given) < n {
		n = len(b.given)
	}
	for i := 0; i < n; i++ {
		wa, wb := a.given[i], b.given[i]
		if !wa.spelled || !wb.spelled {
			continue
		}
		if !spelledWordsConsistent(wa.canonical, wb.canonical) {
			return false
		}
	}
	return true
}

func spelledWordsConsistent(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < minGivenNameCharMatch {
		return false
	}
	return strings.EqualFold(shorter, longer[:len(shorter)])
}

func suffixConsistent(a, b *Name) bool {
	if a.generationalSuffix == "" || b.generationalSuffix == "" {
		return true
	}
	return strings.EqualFold(a.generationalSuffix, b.generationalSuffix)
}

// HaveMatchingVariants reports whether a and b could be variant
// spellings of the same given name once nicknames, diminutives, and
// transliteration are accounted for. It's exposed separately from
// ConsistentWith, which only ever uses prefix matching on given names.
func HaveMatchingVariants(a, b string) bool {
	return nickname.HaveMatchingVariants(a, b)
}

// StripNickname removes every bracketed or quoted nickname segment from
// s, returning s unchanged if none is present.
func StripNickname(s string) string {
	return nickname.StripNickname(s)
}

// Normalize exposes the NFKD/whitespace normalization the parser
// applies internally, for callers that want it as a standalone step.
func Normalize(s string) string {
	return normalize.Text(s)
}
