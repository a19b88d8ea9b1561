package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/config"
	"github.com/katalvlaran/apsp/overlap"
)

// overlapOpts holds the flags of the overlap command.
type overlapOpts struct {
	format     string
	minOverlap int
	matrix     bool
}

type edgeJSON struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

type overlapJSON struct {
	Reads    int        `json:"reads"`
	Max      int        `json:"max"`
	MaxPairs [][2]int   `json:"max_pairs"`
	Edges    []edgeJSON `json:"edges"`
	Matrix   [][]int    `json:"matrix,omitempty"`
}

func (a *app) overlapCmd() *cobra.Command {
	var opts overlapOpts

	cmd := &cobra.Command{
		Use:   "overlap [file]",
		Short: "Print the overlap graph of a read set",
		Long: `Print every ordered pair of reads whose suffix-prefix overlap is at least
--min-overlap, one "from to weight" line per edge, heaviest edges of each read first.

Examples:
  apsp overlap reads.txt
  apsp overlap --format json --matrix reads.fasta
  cat reads.txt | apsp overlap --min-overlap 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = opts.format
			}
			if cmd.Flags().Changed("min-overlap") {
				a.cfg.MinOverlap = opts.minOverlap
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			b, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			g, err := b.res.Graph(a.cfg.MinOverlap)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("Overlap graph: %d reads, %d edges >= %d",
				g.VertexCount(), g.EdgeCount(), a.cfg.MinOverlap)

			if a.cfg.Format == config.FormatJSON {
				return writeOverlapJSON(cmd.OutOrStdout(), b.res, g, opts.matrix)
			}
			return writeOverlapText(cmd.OutOrStdout(), b.res, g, opts.matrix)
		},
	}

	def := config.Default()
	cmd.Flags().StringVarP(&opts.format, "format", "f", def.Format, "output format: text or json")
	cmd.Flags().IntVarP(&opts.minOverlap, "min-overlap", "m", def.MinOverlap, "smallest overlap printed as an edge")
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "also print the full overlap matrix")

	return cmd
}

func writeOverlapText(w io.Writer, res *overlap.Result, g *core.Graph, withMatrix bool) error {
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	if withMatrix {
		_, err := fmt.Fprint(w, res.Matrix)
		return err
	}

	return nil
}

func writeOverlapJSON(w io.Writer, res *overlap.Result, g *core.Graph, withMatrix bool) error {
	out := overlapJSON{
		Reads:    res.Len(),
		Max:      res.Max,
		MaxPairs: make([][2]int, 0, len(res.MaxPairs)),
		Edges:    make([]edgeJSON, 0, g.EdgeCount()),
	}
	for _, p := range res.MaxPairs {
		out.MaxPairs = append(out.MaxPairs, [2]int{p.From, p.To})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeJSON{From: e.From, To: e.To, Weight: e.Weight})
	}
	if withMatrix {
		for i := 0; i < res.Len(); i++ {
			row, err := res.Matrix.Row(i)
			if err != nil {
				return err
			}
			out.Matrix = append(out.Matrix, row)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
