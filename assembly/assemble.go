package assembly

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/exascience/pargo/parallel"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/overlap"
	"github.com/katalvlaran/apsp/reads"
)

// Assembly is the outcome of Assemble.
type Assembly struct {
	// Genome is the reconstructed string.
	Genome string

	// Path lists read indices in assembly order; every read appears once.
	Path []int

	// Start is the max-overlap pair the winning path began with.
	Start overlap.Pair

	// Trimmed is the wrap-around overlap removed in circular mode (0 otherwise).
	Trimmed int

	// Candidates is the number of start pairs tried.
	Candidates int

	// DeadEnds is the number of candidates discarded before using every read.
	DeadEnds int
}

// candidate is one greedy run from a start pair.
type candidate struct {
	ok      bool
	err     error
	genome  string
	path    []int
	trimmed int
}

// Assemble greedily orders the reads of store along the overlap graph of res.
//
// Steps:
//  1. Validate inputs and build the overlap graph with edges >= MinOverlap.
//  2. Collect start pairs: res.MaxPairs when res.Max >= MinOverlap.
//  3. Extend every start in parallel (pargo), one bitset of used reads each.
//  4. Keep the shortest successful genome; ties keep the earliest start.
//
// A single read assembles to itself.
//
// Errors: ErrNilInput, ErrReadCountMismatch, ErrBadMinOverlap, ErrNoPath, or
// the failed overlap lookup of a candidate.
// Complexity: O(P·k·d) for P start pairs, k reads, d mean out-degree.
func Assemble(store *reads.Store, res *overlap.Result, opts ...Option) (Assembly, error) {
	if store == nil || res == nil {
		return Assembly{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MinOverlap < 1 {
		return Assembly{}, fmt.Errorf("%w: %d", ErrBadMinOverlap, o.MinOverlap)
	}
	k := store.Len()
	if res.Len() != k {
		return Assembly{}, fmt.Errorf("%w: %d vs %d", ErrReadCountMismatch, k, res.Len())
	}
	raw := store.Raw()
	if k == 1 {
		return Assembly{Genome: raw[0], Path: []int{0}}, nil
	}

	g, err := res.Graph(o.MinOverlap)
	if err != nil {
		return Assembly{}, fmt.Errorf("assembly: %w", err)
	}
	var starts []overlap.Pair
	if res.Max >= o.MinOverlap {
		starts = res.MaxPairs
	}

	results := make([]candidate, len(starts))
	if len(starts) > 0 {
		parallel.Range(0, len(starts), 0, func(low, high int) {
			for c := low; c < high; c++ {
				results[c] = extend(g, res, raw, starts[c], o)
			}
		})
	}

	out := Assembly{Candidates: len(starts)}
	best := -1
	for c, r := range results {
		if r.err != nil {
			return Assembly{}, fmt.Errorf("assembly: start %v: %w", starts[c], r.err)
		}
		if !r.ok {
			out.DeadEnds++
			continue
		}
		if best < 0 || len(r.genome) < len(results[best].genome) {
			best = c
		}
	}
	if best < 0 {
		return out, fmt.Errorf("%w: %d start pairs, min overlap %d", ErrNoPath, len(starts), o.MinOverlap)
	}
	out.Genome = results[best].genome
	out.Path = results[best].path
	out.Start = starts[best]
	out.Trimmed = results[best].trimmed

	return out, nil
}

// extend runs one greedy path from start. It only reads g and res, so
// candidates may run concurrently. A lookup failure is returned in err,
// a dead end as ok == false.
func extend(g *core.Graph, res *overlap.Result, raw []string, start overlap.Pair, o Options) candidate {
	k := len(raw)
	used := bitset.New(uint(k))
	path := make([]int, 0, k)
	var sb strings.Builder

	place := func(from, to int) error {
		d := 0
		if from >= 0 {
			var err error
			if d, err = res.Overlap(from, to); err != nil {
				return err
			}
		}
		sb.WriteString(raw[to][d:])
		used.Set(uint(to))
		path = append(path, to)
		return nil
	}
	if err := place(-1, start.From); err != nil {
		return candidate{err: err}
	}
	if err := place(start.From, start.To); err != nil {
		return candidate{err: err}
	}

	for !used.All() {
		last := path[len(path)-1]
		nbs, err := g.Neighbors(last)
		if err != nil {
			return candidate{err: err}
		}
		next := -1
		for _, e := range nbs {
			if !used.Test(uint(e.To)) {
				next = e.To
				break
			}
		}
		if next < 0 {
			return candidate{}
		}
		if err := place(last, next); err != nil {
			return candidate{err: err}
		}
	}

	genome := sb.String()
	trimmed := 0
	if o.Circular {
		wrap, err := res.Overlap(path[len(path)-1], path[0])
		if err != nil {
			return candidate{err: err}
		}
		if wrap >= o.MinOverlap && wrap < len(genome) {
			genome = genome[wrap:]
			trimmed = wrap
		}
	}

	return candidate{ok: true, genome: genome, path: path, trimmed: trimmed}
}
