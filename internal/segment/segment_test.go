package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimpleName(t *testing.T) {
	parts := Tokenize("John Doe", true)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, "John", parts[0].Word)
		assert.Equal(t, CategoryName, parts[0].Category)
		assert.Equal(t, Start, parts[0].Location)
		assert.Equal(t, "Doe", parts[1].Word)
		assert.Equal(t, End, parts[1].Location)
	}
}

func TestTokenizeInitial(t *testing.T) {
	parts := Tokenize("J. Doe", true)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, CategoryInitials, parts[0].Category)
	}
}

func TestTokenizeDropsJunk(t *testing.T) {
	parts := Tokenize("John 123 Doe", true)
	assert.Len(t, parts, 2)
}

func TestVowellessSurnameIsNamelike(t *testing.T) {
	parts := Tokenize("John Ng", true)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, CategoryName, parts[1].Category)
	}
}

func TestTokenizeCJKResegmentation(t *testing.T) {
	parts := Tokenize("鈴木 太郎", true)
	assert.NotEmpty(t, parts)
	for _, p := range parts {
		assert.NotEmpty(t, p.Word)
	}
}

func TestInitial(t *testing.T) {
	p := NamePart{Word: "j."}
	assert.Equal(t, 'J', p.Initial())
}
