package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, s string) *Name {
	t.Helper()
	n, ok := Parse(s)
	if !assert.True(t, ok, "expected %q to parse", s) {
		t.FailNow()
	}
	return n
}

func TestParseSimple(t *testing.T) {
	n := mustParse(t, "John Doe")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "John", n.GivenName())
	assert.Equal(t, 'J', n.FirstInitial())
	assert.Equal(t, "", n.MiddleInitials())
	assert.Equal(t, "", n.GenerationalSuffix())
}

func TestParseBareInitial(t *testing.T) {
	n := mustParse(t, "J. Doe")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "", n.GivenName())
	assert.Equal(t, 'J', n.FirstInitial())
}

func TestParseSurnameCommaGiven(t *testing.T) {
	n := mustParse(t, "Doe, John")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "John", n.GivenName())
}

func TestParseSurnameCommaInitial(t *testing.T) {
	n := mustParse(t, "Doe, J.")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "", n.GivenName())
}

func TestParseGenerationalSuffix(t *testing.T) {
	n := mustParse(t, "John Doe III")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "III", n.GenerationalSuffix())
}

func TestParseSurnameCommaSuffixCommaGiven(t *testing.T) {
	n := mustParse(t, "Doe, II, John")
	assert.Equal(t, "Doe", n.Surname())
	assert.Equal(t, "John", n.GivenName())
	assert.Equal(t, "II", n.GenerationalSuffix())
}

func TestParseSurnameCommaGivenGenerationalSuffix(t *testing.T) {
	n := mustParse(t, "Smith, John Jr.")
	assert.Equal(t, "Smith", n.Surname())
	assert.Equal(t, "John", n.GivenName())
	assert.Equal(t, "Jr.", n.GenerationalSuffix())
}

func TestParseFullFixtureWithNicknameAndScriptPrefix(t *testing.T) {
	n := mustParse(t, `鈴木 Velasquez y Garcia, Dr. Juan Q. 'Don Juan' Xavier III`)
	assert.Equal(t, "Velasquez y Garcia", n.Surname())
	assert.Equal(t, "Juan", n.GivenName())
	assert.Equal(t, 'J', n.FirstInitial())
	assert.Equal(t, "QX", n.MiddleInitials())
	assert.Equal(t, "III", n.GenerationalSuffix())
	assert.Equal(t, "Dr.", n.HonorificPrefix())
}

func TestParseHonorificPrefixAndSuffix(t *testing.T) {
	n := mustParse(t, "DR JOHN ALLEN Q MACDONALD JR")
	assert.Equal(t, "MacDonald", n.Surname())
	assert.Equal(t, "John", n.GivenName())
	assert.Equal(t, 'J', n.FirstInitial())
	assert.Equal(t, "AQ", n.MiddleInitials())
	assert.Equal(t, "Allen", n.MiddleNames())
	assert.Equal(t, "Jr.", n.GenerationalSuffix())
	assert.Equal(t, "Dr.", n.HonorificPrefix())
}

func TestParseSpanishConjunctionSurname(t *testing.T) {
	n := mustParse(t, "Juan Velasquez y Garcia")
	assert.Equal(t, "Velasquez y Garcia", n.Surname())
	assert.Equal(t, "Juan", n.GivenName())
}

func TestDisplayShort(t *testing.T) {
	n := mustParse(t, "John Doe")
	assert.Equal(t, "J. Doe", n.DisplayShort())
}

func TestDisplayFull(t *testing.T) {
	n := mustParse(t, "DR JOHN ALLEN Q MACDONALD JR")
	assert.Equal(t, "Dr. John Allen Q. MacDonald Jr.", n.DisplayFull())
}

func TestConsistentWithReflexive(t *testing.T) {
	n := mustParse(t, "John Doe")
	assert.True(t, n.ConsistentWith(n))
}

func TestConsistentWithInitialExpansion(t *testing.T) {
	short := mustParse(t, "J. Doe")
	full := mustParse(t, "John M. Doe")
	assert.True(t, short.ConsistentWith(full))
	assert.True(t, full.ConsistentWith(short))
}

func TestConsistentWithDifferentMiddleInitial(t *testing.T) {
	a := mustParse(t, "John M. Doe")
	b := mustParse(t, "John L. Doe")
	assert.False(t, a.ConsistentWith(b))
}

func TestConsistentWithNonTransitive(t *testing.T) {
	short := mustParse(t, "J. Doe")
	john := mustParse(t, "John M. Doe")
	jane := mustParse(t, "Jane Doe")

	assert.True(t, short.ConsistentWith(john))
	assert.True(t, short.ConsistentWith(jane))
	assert.False(t, john.ConsistentWith(jane))
}

func TestConsistentWithSurnameSuffixMatch(t *testing.T) {
	short := mustParse(t, "Iria Gayo")
	full := mustParse(t, "Iria del Río Gayo")
	assert.True(t, short.ConsistentWith(full))
}

func TestConsistentWithGoesByMiddleName(t *testing.T) {
	a := mustParse(t, "H. Manuel Alperin")
	b := mustParse(t, "Manuel Alperin")
	assert.True(t, a.ConsistentWith(b))
}

func TestConsistentWithDifferentSurname(t *testing.T) {
	a := mustParse(t, "John Doe")
	b := mustParse(t, "John Smith")
	assert.False(t, a.ConsistentWith(b))
}

func TestSurnameHashAgreesOnConsistentNames(t *testing.T) {
	short := mustParse(t, "Iria Gayo")
	full := mustParse(t, "Iria del Río Gayo")
	assert.True(t, short.ConsistentWith(full))
	assert.Equal(t, short.SurnameHash(), full.SurnameHash())
}

func TestParseFails(t *testing.T) {
	_, ok := Parse("   ")
	assert.False(t, ok)
}

func TestHaveMatchingVariantsNickname(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Robert", "Bob"))
}

func TestStripNicknameFreeFunction(t *testing.T) {
	assert.Equal(t, "John Smith", StripNickname(`John "Jack" Smith`))
}

func TestStripNicknameLeavesApostrophesInNamesAlone(t *testing.T) {
	assert.Equal(t, "D'Angelo O'Brien", StripNickname("D'Angelo O'Brien"))
}

func TestStripNicknameQuotedAfterApostropheName(t *testing.T) {
	assert.Equal(t, "D'Angelo Smith", StripNickname(`D'Angelo 'Danny' Smith`))
}

func TestStripNicknameUnmatchedBracketTruncates(t *testing.T) {
	assert.Equal(t, "John", StripNickname("John (Jack Smith"))
}

func TestStripNicknameUnmatchedQuoteLeftInPlace(t *testing.T) {
	assert.Equal(t, "John 'Jack Smith", StripNickname("John 'Jack Smith"))
}
