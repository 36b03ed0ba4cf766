package surname

import (
	"testing"

	"github.com/dbryar/humanname/internal/segment"
	"github.com/stretchr/testify/assert"
)

func words(ws ...string) []segment.NamePart {
	parts := make([]segment.NamePart, len(ws))
	for i, w := range ws {
		parts[i] = segment.NamePart{Word: w, CanonicalForm: w, Category: segment.CategoryName}
	}
	return parts
}

func TestFindSurnameIndexOneWord(t *testing.T) {
	assert.Equal(t, 0, FindSurnameIndex(words("Doe")))
}

func TestFindSurnameIndexTwoWords(t *testing.T) {
	assert.Equal(t, 1, FindSurnameIndex(words("Jane", "Doe")))
}

func TestFindSurnameIndexThreeWords(t *testing.T) {
	assert.Equal(t, 2, FindSurnameIndex(words("Jane", "Emily", "Doe")))
}

func TestFindSurnameIndexConjunctionAfterOne(t *testing.T) {
	assert.Equal(t, 0, FindSurnameIndex(words("Rodrigo", "y", "Velazquez")))
}

func TestFindSurnameIndexConjunctionAfterTwo(t *testing.T) {
	assert.Equal(t, 1, FindSurnameIndex(words("Jane", "Rodrigo", "y", "Velazquez")))
}

func TestFindSurnameIndexParticleAfterOne(t *testing.T) {
	assert.Equal(t, 1, FindSurnameIndex(words("Jane", "al-", "Qader")))
}

func TestFindSurnameIndexParticleAndConjunction(t *testing.T) {
	assert.Equal(t, 1, FindSurnameIndex(words("Alejandro", "de", "Aza", "y", "Cabra")))
}
