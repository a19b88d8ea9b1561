// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one
// source all land and keep the adjacency list ordered.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge(0, id, id%7+1))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	for k := 1; k < len(nbs); k++ {
		prev, cur := nbs[k-1], nbs[k]
		ordered := prev.Weight > cur.Weight || (prev.Weight == cur.Weight && prev.To < cur.To)
		assert.True(t, ordered, "position %d: %v then %v", k, prev, cur)
	}
}

// TestConcurrentReaders runs Neighbors and Edges from many goroutines
// while a writer adds edges elsewhere.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph(100)
	for i := 1; i < 50; i++ {
		require.NoError(t, g.AddEdge(0, i, i))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(0)
			assert.NoError(t, err)
			assert.Len(t, nbs, 49)
			_ = g.Edges()
		}()
	}
	go func() {
		defer wg.Done()
		for i := 51; i < 100; i++ {
			assert.NoError(t, g.AddEdge(50, i, 1))
		}
	}()
	wg.Wait()

	assert.Equal(t, 98, g.EdgeCount())
}
