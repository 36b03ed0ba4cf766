package transliterate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsASCII(t *testing.T) {
	assert.True(t, IsASCII("John Doe"))
	assert.False(t, IsASCII("José"))
}

func TestToASCIILeavesASCIIUnchanged(t *testing.T) {
	assert.Equal(t, "John Doe", ToASCII("John Doe"))
}

func TestToASCIIFoldsDiacritics(t *testing.T) {
	assert.Equal(t, "Jose", ToASCII("José"))
	assert.Equal(t, "Muller", ToASCII("Müller"))
}

func TestToASCIITitlecase(t *testing.T) {
	assert.Equal(t, "Jose", ToASCIITitlecase("josé"))
	assert.Equal(t, "Jose-Maria", ToASCIITitlecase("JOSÉ-MARIA"))
}

func TestDetectScriptHintASCIIIsEmpty(t *testing.T) {
	assert.Equal(t, "", DetectScriptHint("John Doe"))
}

func TestDetectScriptHintNonLatin(t *testing.T) {
	hint := DetectScriptHint("鈴木一郎鈴木一郎鈴木一郎")
	assert.NotEqual(t, "", hint)
}
