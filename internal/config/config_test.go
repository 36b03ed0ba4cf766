package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbryar/humanname/internal/segment"
	"github.com/dbryar/humanname/internal/surname"
)

func TestLoadMissingFileIsNotError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.SurnamePrefixes)
	assert.Empty(t, cfg.Nicknames)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanname.yaml")
	contents := "surname_prefixes:\n  - mac\n  - von\nnicknames:\n  Bazza: [\"Barry\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mac", "von"}, cfg.SurnamePrefixes)
	assert.Equal(t, []string{"Barry"}, cfg.Nicknames["Bazza"])
}

func TestApplyIsIdempotentAndMerges(t *testing.T) {
	cfg := Config{
		SurnamePrefixes: []string{"zzqq"},
		Nicknames:       map[string][]string{"Zzqq": {"Zzqqson"}},
	}
	cfg.Apply()
	cfg.Apply()

	words := []segment.NamePart{
		{Word: "Jane", CanonicalForm: "Jane", Category: segment.CategoryName},
		{Word: "Zzqq", CanonicalForm: "Zzqq", Category: segment.CategoryName},
		{Word: "Doe", CanonicalForm: "Doe", Category: segment.CategoryName},
	}
	assert.Equal(t, 1, surname.FindSurnameIndex(words))
}
