package assembly_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/assembly"
	"github.com/katalvlaran/apsp/overlap"
	"github.com/katalvlaran/apsp/reads"
	"github.com/katalvlaran/apsp/suffixtree"
)

func prepare(t testing.TB, raw []string) (*reads.Store, *overlap.Result) {
	t.Helper()
	store, err := reads.New(raw)
	require.NoError(t, err)
	tree, err := suffixtree.Build(store)
	require.NoError(t, err)
	res, err := overlap.Compute(tree)
	require.NoError(t, err)

	return store, res
}

func TestAssemble_Errors(t *testing.T) {
	store, res := prepare(t, []string{"ACGT", "GTCA"})

	_, err := assembly.Assemble(nil, res)
	assert.ErrorIs(t, err, assembly.ErrNilInput)
	_, err = assembly.Assemble(store, nil)
	assert.ErrorIs(t, err, assembly.ErrNilInput)

	_, err = assembly.Assemble(store, res, assembly.WithMinOverlap(0))
	assert.ErrorIs(t, err, assembly.ErrBadMinOverlap)

	_, other := prepare(t, []string{"ACGT", "GTCA", "CATT"})
	_, err = assembly.Assemble(store, other)
	assert.ErrorIs(t, err, assembly.ErrReadCountMismatch)
}

func TestAssemble_SingleRead(t *testing.T) {
	store, res := prepare(t, []string{"ACGTTG"})
	a, err := assembly.Assemble(store, res)
	require.NoError(t, err)
	assert.Equal(t, "ACGTTG", a.Genome)
	assert.Equal(t, []int{0}, a.Path)
}

func TestAssemble_LinearAndCircular(t *testing.T) {
	store, res := prepare(t, []string{"AACC", "ACCG", "CCGA", "CGAA"})

	lin, err := assembly.Assemble(store, res, assembly.WithCircular(false))
	require.NoError(t, err)
	assert.Equal(t, "AACCGAA", lin.Genome)
	assert.Equal(t, []int{0, 1, 2, 3}, lin.Path)
	assert.Zero(t, lin.Trimmed)
	assert.Equal(t, 3, lin.Candidates)

	circ, err := assembly.Assemble(store, res)
	require.NoError(t, err)
	// The tail "AA" wraps into the head.
	assert.Equal(t, "CCGAA", circ.Genome)
	assert.Equal(t, 2, circ.Trimmed)
	assert.Equal(t, overlap.Pair{From: 0, To: 1}, circ.Start)
}

func TestAssemble_DeadEnd(t *testing.T) {
	store, res := prepare(t, []string{"ACGT", "GTCA", "TTTT"})

	a, err := assembly.Assemble(store, res, assembly.WithMinOverlap(2))
	require.ErrorIs(t, err, assembly.ErrNoPath)
	assert.Equal(t, 1, a.Candidates)
	assert.Equal(t, 1, a.DeadEnds)
}

func TestAssemble_NoOverlaps(t *testing.T) {
	store, res := prepare(t, []string{"AAAA", "CCCC"})

	_, err := assembly.Assemble(store, res)
	assert.ErrorIs(t, err, assembly.ErrNoPath)
}

func TestAssemble_IdenticalReads(t *testing.T) {
	store, res := prepare(t, []string{"ACGT", "ACGT"})

	a, err := assembly.Assemble(store, res)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", a.Genome)
	assert.Zero(t, a.Trimmed, "a wrap-around as long as the genome is not trimmed")
}

func TestAssemble_CircularGenome(t *testing.T) {
	const genome = "GGATCACAGTCTACACTGCTCACTCCAACC"
	doubled := genome + genome
	var raw []string
	for i := 0; i < len(genome); i += 3 {
		raw = append(raw, doubled[i:i+10])
	}
	store, res := prepare(t, raw)

	a, err := assembly.Assemble(store, res, assembly.WithMinOverlap(5))
	require.NoError(t, err)
	assert.Equal(t, "AGTCTACACTGCTCACTCCAACCGGATCAC", a.Genome)
	assert.Len(t, a.Genome, len(genome))
	assert.True(t, strings.Contains(doubled, a.Genome), "result is a rotation")
	assert.Equal(t, 7, a.Trimmed)
	assert.Equal(t, 10, a.Candidates)
	assert.Zero(t, a.DeadEnds)
}

func TestAssemble_LinearTilingDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	b := make([]byte, 1000)
	for i := range b {
		b[i] = "ACGT"[rng.Intn(4)]
	}
	genome := string(b)
	var raw []string
	for s := 0; s+100 <= len(genome); s += 20 {
		raw = append(raw, genome[s:s+100])
	}
	store, res := prepare(t, raw)

	first, err := assembly.Assemble(store, res, assembly.WithCircular(false), assembly.WithMinOverlap(50))
	require.NoError(t, err)
	assert.Equal(t, genome, first.Genome)
	assert.Equal(t, first.Candidates-1, first.DeadEnds)

	for i := 0; i < 5; i++ {
		again, err := assembly.Assemble(store, res, assembly.WithCircular(false), assembly.WithMinOverlap(50))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
