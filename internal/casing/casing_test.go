package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeWordSimple(t *testing.T) {
	assert.Equal(t, "A", CapitalizeWord("a", true))
	assert.Equal(t, "Aa", CapitalizeWord("aa", true))
	assert.Equal(t, "Aa", CapitalizeWord("AA", true))
}

func TestCapitalizeWordHyphenated(t *testing.T) {
	assert.Equal(t, "Aa-Bb", CapitalizeWord("aa-bb", false))
	assert.Equal(t, "Aa-Bb", CapitalizeWord("AA-BB", false))
}

func TestIsMixedCase(t *testing.T) {
	assert.False(t, IsMixedCase("JOHN MACDONALD"))
	assert.True(t, IsMixedCase("J. MacDonald"))
}

func TestNamecaseSimple(t *testing.T) {
	assert.Equal(t, "Doe", Namecase("doe", true, true))
}

func TestNamecaseConjunction(t *testing.T) {
	assert.Equal(t, "y", Namecase("y", true, true))
	assert.Equal(t, "Y", Namecase("y", true, false))
}

func TestNamecaseParticle(t *testing.T) {
	assert.Equal(t, "de", Namecase("de", true, true))
	assert.Equal(t, "De", Namecase("de", true, false))
}

func TestNamecaseMac(t *testing.T) {
	assert.Equal(t, "McAllen", Namecase("mcallen", true, true))
	assert.Equal(t, "MacMurdo", Namecase("macmurdo", true, true))
	assert.Equal(t, "Machlin", Namecase("machlin", true, true))
	assert.Equal(t, "Maciej", Namecase("maciej", true, true))
	assert.Equal(t, "Mach", Namecase("mach", true, true))
	assert.Equal(t, "MacAdaidh", Namecase("macadaidh", true, true))
}

func TestNamecaseAlParticle(t *testing.T) {
	assert.Equal(t, "al-Amir", Namecase("al-amir", false, true))
}
