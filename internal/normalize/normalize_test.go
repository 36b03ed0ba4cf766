package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestTextFoldsWhitespace(t *testing.T) {
	got := Text("John\tDoe Jr")
	assert.Equal(t, "John Doe Jr", got)
}

func TestTextDecomposesNFKD(t *testing.T) {
	got := Text("José")
	assert.Equal(t, norm.NFKD.String("José"), got)
	assert.True(t, norm.NFKD.IsNormalString(got))
}

func TestTextFixedPoint(t *testing.T) {
	inputs := []string{"John Doe", "José García", "Jürgen　Groß", "鈴木 Velasquez"}
	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		assert.Equal(t, once, twice, "normalization must be a fixed point for %q", in)
	}
}

func TestIsNormal(t *testing.T) {
	assert.True(t, IsNormal("John Doe"))
	assert.False(t, IsNormal("John\tDoe"))
}
