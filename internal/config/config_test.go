package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "ACGT", cfg.Alphabet)
	assert.Equal(t, 1, cfg.MinOverlap)
	assert.True(t, cfg.Circular)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apsp.toml")
	require.NoError(t, os.WriteFile(path, []byte("min_overlap = 20\ncircular = false\nformat = \"json\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.MinOverlap)
	assert.False(t, cfg.Circular)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, "ACGT", cfg.Alphabet, "unset keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]error{
		"min_overlpa = 3\n":      config.ErrUnknownKey,
		"min_overlap = 0\n":      config.ErrInvalid,
		"format = \"xml\"\n":     config.ErrInvalid,
		"alphabet = \"\"\n":      config.ErrInvalid,
		"min_length = 0\n":       config.ErrInvalid,
		"edge_table_size = -1\n": config.ErrInvalid,
	}
	for in, want := range cases {
		_, err := config.Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, want, "input %q", in)
	}

	_, err := config.Decode(strings.NewReader("min_overlap = "))
	assert.Error(t, err, "syntax error")
}

func TestDecode_CustomAlphabet(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("alphabet = \"ABC\"\nedge_table_size = 101\n"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", cfg.Alphabet)
	assert.Equal(t, 101, cfg.EdgeTableSize)
}
