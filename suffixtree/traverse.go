package suffixtree

import "fmt"

// TraverseOption configures Tree.Traverse.
type TraverseOption func(*TraverseOptions)

// TraverseOptions holds the traversal hooks.
type TraverseOptions struct {
	// OnVisit, if non-nil, is invoked when a node is entered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(n NodeID) error

	// OnExit, if non-nil, is invoked after every child of a node has been
	// explored (post-order). Returning an error aborts the traversal.
	OnExit func(n NodeID) error
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(n NodeID) error) TraverseOption {
	return func(o *TraverseOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(n NodeID) error) TraverseOption {
	return func(o *TraverseOptions) {
		o.OnExit = fn
	}
}

// TraverseResult reports traversal diagnostics.
type TraverseResult struct {
	// Visited counts nodes entered.
	Visited int

	// Leaves counts leaves entered.
	Leaves int

	// MaxStack is the deepest frame stack reached, i.e. the node height of the tree plus one.
	MaxStack int
}

// frame is one explicit-stack entry: a node and the index of the next
// alphabet symbol whose child edge has not been explored yet.
type frame struct {
	node NodeID
	next int
}

// Traverse runs a depth-first traversal from the root, exploring children in
// alphabet-then-sentinel order. The call stack does not grow with tree
// height: frames live on an explicit slice.
//
// On normal completion every node gets exactly one OnVisit followed, after
// its whole subtree, by exactly one OnExit. A hook error stops the traversal
// immediately; nodes still on the stack do not get OnExit.
//
// Complexity: O(V·σ) edge-table probes, σ = alphabet size + 1.
func (t *Tree) Traverse(opts ...TraverseOption) (TraverseResult, error) {
	var o TraverseOptions
	for _, fn := range opts {
		fn(&o)
	}

	var res TraverseResult
	sym := t.store.Symbols()
	stack := make([]frame, 0, 64)

	enter := func(n NodeID) error {
		res.Visited++
		if len(t.nodes[n].marks) > 0 {
			res.Leaves++
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(n); err != nil {
				return fmt.Errorf("traverse: OnVisit(%d): %w", n, err)
			}
		}
		stack = append(stack, frame{node: n})
		if len(stack) > res.MaxStack {
			res.MaxStack = len(stack)
		}

		return nil
	}

	if err := enter(Root); err != nil {
		return res, err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(sym) {
			c := sym[top.next]
			top.next++
			if e, ok := t.edges.find(top.node, c); ok {
				if err := enter(e.End); err != nil {
					return res, err
				}
			}
			continue
		}

		n := top.node
		stack = stack[:len(stack)-1]
		if o.OnExit != nil {
			if err := o.OnExit(n); err != nil {
				return res, fmt.Errorf("traverse: OnExit(%d): %w", n, err)
			}
		}
	}

	return res, nil
}
