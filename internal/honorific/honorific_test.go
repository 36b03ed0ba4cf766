package honorific

import (
	"testing"

	"github.com/dbryar/humanname/internal/segment"
	"github.com/stretchr/testify/assert"
)

func namePart(word, canonical string, cat segment.Category) segment.NamePart {
	counts := segment.CharacterCounts{
		Chars:      len(word),
		Alpha:      len(word),
		ASCIIAlpha: len(word),
	}
	return segment.NamePart{Word: word, CanonicalForm: canonical, Category: cat, Counts: counts}
}

func TestCanonicalizePrefixKnown(t *testing.T) {
	part := namePart("Doctor", "Doctor", segment.CategoryName)
	assert.Equal(t, "Dr.", CanonicalizePrefix(part))
}

func TestCanonicalizeColonelNoTrailingComma(t *testing.T) {
	part := namePart("Colonel", "Colonel", segment.CategoryName)
	assert.Equal(t, "Col.", CanonicalizePrefix(part))
}

func TestCanonicalizeSuffixKnown(t *testing.T) {
	part := namePart("Phd", "Phd", segment.CategoryName)
	assert.Equal(t, "Ph.D.", CanonicalizeSuffix(part))
}

func TestIsPrefixTitleSingleWord(t *testing.T) {
	parts := []segment.NamePart{namePart("Dr", "Dr", segment.CategoryName)}
	assert.True(t, isPrefixTitle(parts))
}

func TestFindPrefixLenNone(t *testing.T) {
	parts := []segment.NamePart{
		namePart("John", "John", segment.CategoryName),
		namePart("Doe", "Doe", segment.CategoryName),
	}
	assert.Equal(t, 0, FindPrefixLen(parts))
}

func TestFindPrefixLenWord(t *testing.T) {
	parts := []segment.NamePart{
		namePart("Dr", "Dr", segment.CategoryName),
		namePart("John", "John", segment.CategoryName),
		namePart("Doe", "Doe", segment.CategoryName),
	}
	assert.Equal(t, 1, FindPrefixLen(parts))
}
