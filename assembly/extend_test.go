package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/overlap"
	"github.com/katalvlaran/apsp/reads"
	"github.com/katalvlaran/apsp/suffixtree"
)

func TestExtend_LookupErrorIsReported(t *testing.T) {
	store, err := reads.New([]string{"AACC", "ACCG"})
	require.NoError(t, err)
	tree, err := suffixtree.Build(store)
	require.NoError(t, err)
	res, err := overlap.Compute(tree)
	require.NoError(t, err)
	g, err := res.Graph(1)
	require.NoError(t, err)

	c := extend(g, res, store.Raw(), overlap.Pair{From: 0, To: 7}, DefaultOptions())
	require.Error(t, c.err)
	assert.ErrorIs(t, c.err, overlap.ErrReadOutOfRange)
	assert.False(t, c.ok)

	c = extend(g, res, store.Raw(), overlap.Pair{From: 0, To: 1}, DefaultOptions())
	require.NoError(t, c.err)
	assert.True(t, c.ok)
	assert.Equal(t, "AACCG", c.genome)
}
