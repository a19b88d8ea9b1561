package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/assembly"
	"github.com/katalvlaran/apsp/internal/config"
	"github.com/katalvlaran/apsp/reads"
)

const chainReads = "AACC\nACCG\nCCGA\nCGAA\n"

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("APSP_CONFIG", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetVersion(t *testing.T) {
	old, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { SetVersion(old, oldCommit, oldDate) })

	SetVersion("1.2.0", "abc123", "2025-01-01")
	assert.Equal(t, "1.2.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2025-01-01", date)
}

func TestOverlap_TextStdin(t *testing.T) {
	out, stderr, err := execute(t, chainReads, "overlap", "--min-overlap", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1 3\n1 2 3\n2 3 3\n", out)
	assert.Contains(t, stderr, "Loaded 4 reads from stdin")
}

func TestOverlap_AllEdgesHeaviestFirst(t *testing.T) {
	out, _, err := execute(t, chainReads, "overlap", "-")
	require.NoError(t, err)
	want := "0 1 3\n0 2 2\n0 3 1\n" +
		"1 2 3\n1 3 2\n" +
		"2 3 3\n2 0 1\n2 1 1\n" +
		"3 0 2\n3 1 1\n"
	assert.Equal(t, want, out)
}

func TestOverlap_TextMatrix(t *testing.T) {
	out, _, err := execute(t, chainReads, "overlap", "-m", "3", "--matrix")
	require.NoError(t, err)
	assert.Equal(t, "0 1 3\n1 2 3\n2 3 3\n"+
		"[0, 3, 2, 1]\n[0, 0, 3, 2]\n[1, 1, 0, 3]\n[2, 1, 0, 0]\n", out)
}

func TestOverlap_JSONFromFile(t *testing.T) {
	path := writeFile(t, "reads.fasta", ">r0\nAACC\n>r1\nACCG\n>r2\nCCGA\n>r3\nCGAA\n")

	out, _, err := execute(t, "", "overlap", "--format", "json", "--matrix", "--min-overlap", "2", path)
	require.NoError(t, err)

	var got overlapJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Reads)
	assert.Equal(t, 3, got.Max)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, got.MaxPairs)
	assert.Equal(t, []edgeJSON{
		{From: 0, To: 1, Weight: 3}, {From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 0, Weight: 2},
	}, got.Edges)
	assert.Equal(t, [][]int{{0, 3, 2, 1}, {0, 0, 3, 2}, {1, 1, 0, 3}, {2, 1, 0, 0}}, got.Matrix)
}

func TestOverlap_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "apsp.toml", "min_overlap = 3\nformat = \"text\"\n")

	out, _, err := execute(t, chainReads, "overlap", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0 1 3\n1 2 3\n2 3 3\n", out)

	// A flag wins over the file.
	out, _, err = execute(t, chainReads, "overlap", "--config", cfg, "--min-overlap", "2")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestOverlap_CustomAlphabet(t *testing.T) {
	_, _, err := execute(t, "ACGU\nGUAC\n", "overlap")
	require.ErrorIs(t, err, reads.ErrInvalidSymbol)

	out, _, err := execute(t, "ACGU\nGUAC\n", "overlap", "--alphabet", "ACGU")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n1 0 2\n", out)
}

func TestOverlap_Errors(t *testing.T) {
	_, _, err := execute(t, chainReads, "overlap", "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, chainReads, "overlap", "--min-overlap", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "", "overlap", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := writeFile(t, "bad.toml", "min_overlapp = 3\n")
	_, _, err = execute(t, chainReads, "overlap", "--config", cfg)
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestAssemble(t *testing.T) {
	out, stderr, err := execute(t, chainReads, "assemble")
	require.NoError(t, err)
	assert.Equal(t, "CCGAA\n", out)
	assert.Contains(t, stderr, "Assembled 5 bases from 3 start pairs")

	out, _, err = execute(t, chainReads, "assemble", "--linear")
	require.NoError(t, err)
	assert.Equal(t, "AACCGAA\n", out)
}

func TestAssemble_NoPath(t *testing.T) {
	_, _, err := execute(t, "AAAA\nCCCC\n", "assemble")
	assert.ErrorIs(t, err, assembly.ErrNoPath)
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "GACT\nACT\nACT\nCTG\nT\n", "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 5 reads, 25 cells match\n", out)
}

func TestVerboseLogsDebug(t *testing.T) {
	_, quiet, err := execute(t, chainReads, "overlap")
	require.NoError(t, err)
	assert.NotContains(t, quiet, "traversal")

	_, loud, err := execute(t, chainReads, "-v", "overlap")
	require.NoError(t, err)
	assert.Contains(t, loud, "traversal")
	assert.Contains(t, loud, "max_stack=")
}
