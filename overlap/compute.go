package overlap

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/suffixtree"
)

// Pair is an ordered pair of reads: a suffix of From overlaps a prefix of To.
type Pair struct {
	From, To int
}

// Stats reports counters of one Compute run.
type Stats struct {
	Pushes   int // node pushes onto per-read stacks
	Pops     int // node pops from per-read stacks
	Visited  int // tree nodes entered
	Leaves   int // leaves entered
	MaxStack int // deepest traversal frame stack
}

// Result is the outcome of Compute.
type Result struct {
	// Matrix is the k×k overlap matrix D.
	Matrix *matrix.Dense

	// Max is the largest off-diagonal overlap, 0 if no pair overlaps.
	Max int

	// MaxPairs lists every pair achieving Max (> 0), sorted by From then To.
	MaxPairs []Pair

	// Stats holds traversal counters.
	Stats Stats

	lengths []int // read lengths without sentinel
}

// computer carries the per-run traversal state.
type computer struct {
	tree    *suffixtree.Tree
	d       *matrix.Dense
	lengths []int
	stacks  [][]suffixtree.NodeID
	res     *Result
}

// Compute runs Gusfield's all-pairs suffix-prefix traversal over tree.
//
// Steps:
//  1. Allocate D (k×k zero) and one empty stack per read.
//  2. Traverse the tree depth first. OnVisit pushes the node onto the stack
//     of every read in its terminal list and, at a leaf carrying the whole
//     read j, fills column j. OnExit pops what OnVisit pushed.
//  3. Verify every stack is empty and pushes == pops.
//
// Errors: ErrNilTree, ErrStackImbalance, or a traversal error.
func Compute(tree *suffixtree.Tree) (*Result, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	store := tree.Reads()
	k := store.Len()
	d, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("overlap: allocate %dx%d: %w", k, k, err)
	}

	c := &computer{
		tree:    tree,
		d:       d,
		lengths: make([]int, k),
		stacks:  make([][]suffixtree.NodeID, k),
		res:     &Result{Matrix: d},
	}
	for i := range c.lengths {
		c.lengths[i] = store.Length(i)
	}
	c.res.lengths = c.lengths

	tr, err := tree.Traverse(
		suffixtree.WithOnVisit(c.visit),
		suffixtree.WithOnExit(c.exit),
	)
	if err != nil {
		return nil, fmt.Errorf("overlap: %w", err)
	}
	c.res.Stats.Visited = tr.Visited
	c.res.Stats.Leaves = tr.Leaves
	c.res.Stats.MaxStack = tr.MaxStack

	if c.res.Stats.Pushes != c.res.Stats.Pops {
		return nil, fmt.Errorf("%w: %d pushes, %d pops", ErrStackImbalance, c.res.Stats.Pushes, c.res.Stats.Pops)
	}
	for i, s := range c.stacks {
		if len(s) != 0 {
			return nil, fmt.Errorf("%w: stack %d holds %d nodes", ErrStackImbalance, i, len(s))
		}
	}

	sort.Slice(c.res.MaxPairs, func(a, b int) bool {
		pa, pb := c.res.MaxPairs[a], c.res.MaxPairs[b]
		if pa.From != pb.From {
			return pa.From < pb.From
		}
		return pa.To < pb.To
	})

	return c.res, nil
}

func (c *computer) visit(n suffixtree.NodeID) error {
	terminal, err := c.tree.Terminal(n)
	if err != nil {
		return err
	}
	for _, j := range terminal {
		c.stacks[j] = append(c.stacks[j], n)
		c.res.Stats.Pushes++
	}

	marks, err := c.tree.Marks(n)
	if err != nil {
		return err
	}
	for _, m := range marks {
		if m.Pos == 0 {
			if err := c.fillColumn(m.Read, marks); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *computer) exit(n suffixtree.NodeID) error {
	terminal, err := c.tree.Terminal(n)
	if err != nil {
		return err
	}
	for _, j := range terminal {
		s := c.stacks[j]
		if len(s) == 0 || s[len(s)-1] != n {
			return fmt.Errorf("%w: pop of node %d from stack %d", ErrStackImbalance, n, j)
		}
		c.stacks[j] = s[:len(s)-1]
		c.res.Stats.Pops++
	}

	return nil
}

// fillColumn writes D[i][j] for every i != j once the traversal stands on
// the leaf spelling all of read j. marks are the suffixes ending there.
func (c *computer) fillColumn(j int, marks []suffixtree.Mark) error {
	col := make([]int, len(c.stacks))
	for i, s := range c.stacks {
		if i == j || len(s) == 0 {
			continue
		}
		depth, err := c.tree.Depth(s[len(s)-1])
		if err != nil {
			return err
		}
		col[i] = depth
	}
	// Read j is a suffix of every other read ending on this leaf.
	for _, m := range marks {
		if m.Read != j {
			col[m.Read] = c.lengths[j]
		}
	}

	for i, v := range col {
		if i == j {
			continue
		}
		if err := c.d.Set(i, j, v); err != nil {
			return err
		}
		c.track(i, j, v)
	}

	return nil
}

// track maintains the global maximum and the pairs achieving it.
func (c *computer) track(i, j, v int) {
	switch {
	case v <= 0 || v < c.res.Max:
	case v > c.res.Max:
		c.res.Max = v
		c.res.MaxPairs = append(c.res.MaxPairs[:0], Pair{From: i, To: j})
	default:
		c.res.MaxPairs = append(c.res.MaxPairs, Pair{From: i, To: j})
	}
}
