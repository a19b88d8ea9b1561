package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/overlap"
	"github.com/katalvlaran/apsp/reads"
	"github.com/katalvlaran/apsp/suffixtree"
)

// batch is a loaded read set with its tree and overlap result.
type batch struct {
	store *reads.Store
	tree  *suffixtree.Tree
	res   *overlap.Result
}

// openInput returns the file named by args[0], or the command's stdin when
// args is empty or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}

	return f, args[0], nil
}

// loadReads parses and validates the input reads.
func (a *app) loadReads(cmd *cobra.Command, args []string) (*reads.Store, error) {
	logger := loggerFromContext(cmd.Context())
	in, name, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	prog := newProgress(logger)
	raw, err := reads.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	store, err := reads.New(raw, reads.WithAlphabet(a.cfg.Alphabet), reads.WithMinLength(a.cfg.MinLength))
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", name, err)
	}
	prog.done(fmt.Sprintf("Loaded %d reads from %s", store.Len(), name))
	logger.Debug("reads", "total_length", store.TotalLength(), "alphabet", store.Alphabet())

	return store, nil
}

// computeOverlaps builds the suffix tree of store and runs the overlap traversal.
func (a *app) computeOverlaps(ctx context.Context, store *reads.Store) (*batch, error) {
	logger := loggerFromContext(ctx)

	var topts []suffixtree.Option
	if a.cfg.EdgeTableSize > 0 {
		topts = append(topts, suffixtree.WithEdgeTableSize(a.cfg.EdgeTableSize))
	}
	prog := newProgress(logger)
	tree, err := suffixtree.Build(store, topts...)
	if err != nil {
		return nil, err
	}
	prog.done("Built suffix tree")
	logger.Debug("suffix tree", "nodes", tree.NodeCount(), "edges", tree.EdgeCount(), "table_size", tree.TableSize())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prog = newProgress(logger)
	res, err := overlap.Compute(tree)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Computed overlaps, max %d over %d pairs", res.Max, len(res.MaxPairs)))
	logger.Debug("traversal", "visited", res.Stats.Visited, "leaves", res.Stats.Leaves,
		"pushes", res.Stats.Pushes, "pops", res.Stats.Pops, "max_stack", res.Stats.MaxStack)

	return &batch{store: store, tree: tree, res: res}, nil
}

// run loads the input and computes its overlaps.
func (a *app) run(cmd *cobra.Command, args []string) (*batch, error) {
	store, err := a.loadReads(cmd, args)
	if err != nil {
		return nil, err
	}
	if err := cmd.Context().Err(); err != nil {
		return nil, err
	}

	return a.computeOverlaps(cmd.Context(), store)
}
