package suffixtree_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/apsp/reads"
	"github.com/katalvlaran/apsp/suffixtree"
)

// BenchmarkBuild_1000x100 measures construction plus annotation for 1000
// random reads of length 100 (N ≈ 101k with sentinels).
func BenchmarkBuild_1000x100(b *testing.B) {
	store, err := reads.New(randomReads(rand.New(rand.NewSource(1)), 1000, 100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := suffixtree.Build(store); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTraverse_1000x100 measures one full depth-first pass without hooks.
func BenchmarkTraverse_1000x100(b *testing.B) {
	store, _ := reads.New(randomReads(rand.New(rand.NewSource(1)), 1000, 100, 100))
	tree, err := suffixtree.Build(store)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Traverse()
	}
}

// BenchmarkBuild_Homopolymer20k builds a single 20k-symbol run of one base,
// the worst case for walking every suffix from the root.
func BenchmarkBuild_Homopolymer20k(b *testing.B) {
	store, err := reads.New([]string{strings.Repeat("A", 20000)})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := suffixtree.Build(store); err != nil {
			b.Fatal(err)
		}
	}
}
