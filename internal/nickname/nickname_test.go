package nickname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripNicknameNothing(t *testing.T) {
	assert.Equal(t, "John Smith", StripNickname("John Smith"))
}

func TestStripNicknameParens(t *testing.T) {
	assert.Equal(t, "John Smith", StripNickname("John (Jack) Smith"))
}

func TestStripNicknameUnmatchedParens(t *testing.T) {
	assert.Equal(t, "John", StripNickname("John (Jack Smith"))
}

func TestStripNicknameQuotes(t *testing.T) {
	assert.Equal(t, "John Smith", StripNickname(`John "Jack" Smith`))
}

func TestStripNicknameUnmatchedQuote(t *testing.T) {
	assert.Equal(t, `John "Jack Smith`, StripNickname(`John "Jack Smith`))
}

func TestStripNicknameCurlyQuotes(t *testing.T) {
	assert.Equal(t, "John Smith", StripNickname("John “Jack” Smith"))
}

func TestStripNicknameAtStart(t *testing.T) {
	assert.Equal(t, "Smith", StripNickname("(Jack) Smith"))
}

func TestStripNicknameAtEnd(t *testing.T) {
	assert.Equal(t, "John", StripNickname("John (Jack)"))
}

func TestHaveMatchingVariantsExact(t *testing.T) {
	assert.True(t, HaveMatchingVariants("John", "john"))
}

func TestHaveMatchingVariantsPrefix(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Kenneth", "Ken"))
}

func TestHaveMatchingVariantsDiminutive(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Kenneth", "Kenny"))
	assert.True(t, HaveMatchingVariants("David", "Davy"))
}

func TestHaveMatchingVariantsFinalSyllables(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Leroy", "Roy"))
}

func TestHaveMatchingVariantsIrregular(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Dorothy", "Dot"))
	assert.True(t, HaveMatchingVariants("Robert", "Bob"))
	assert.True(t, HaveMatchingVariants("Agnes", "Ann"))
}

func TestHaveMatchingVariantsNickPrefixTable(t *testing.T) {
	assert.True(t, HaveMatchingVariants("Luann", "Annie"))
}

func TestHaveMatchingVariantsDiminutiveException(t *testing.T) {
	assert.False(t, matchesWithoutDiminutive("Troy", "Tro"))
}

func TestHaveMatchingVariantsFinalSyllablesException(t *testing.T) {
	assert.False(t, isFinalSyllablesOf("Than", "Nathan"))
}

func TestHaveMatchingVariantsNonmatching(t *testing.T) {
	assert.False(t, HaveMatchingVariants("John", "Paul"))
	assert.False(t, HaveMatchingVariants("Susan", "Margaret"))
}

func TestHaveMatchingVariantsTransliterated(t *testing.T) {
	assert.True(t, HaveMatchingVariants("José", "Jose"))
}
