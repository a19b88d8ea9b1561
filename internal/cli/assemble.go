package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/assembly"
	"github.com/katalvlaran/apsp/internal/config"
)

func (a *app) assembleCmd() *cobra.Command {
	var (
		linear     bool
		minOverlap int
	)

	cmd := &cobra.Command{
		Use:   "assemble [file]",
		Short: "Reassemble the genome from a read set",
		Long: `Reassemble the genome by a greedy Hamiltonian path over the overlap graph.
Every maximum-overlap pair is tried as a start; the shortest complete result wins.
Genomes are treated as circular unless --linear is given.

Examples:
  apsp assemble reads.txt
  apsp assemble --linear --min-overlap 12 reads.fasta`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("linear") {
				a.cfg.Circular = !linear
			}
			if cmd.Flags().Changed("min-overlap") {
				a.cfg.MinOverlap = minOverlap
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			b, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			asm, err := assembly.Assemble(b.store, b.res,
				assembly.WithCircular(a.cfg.Circular),
				assembly.WithMinOverlap(a.cfg.MinOverlap),
			)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Assembled %d bases from %d start pairs", len(asm.Genome), asm.Candidates))
			logger.Debug("assembly", "start", asm.Start, "trimmed", asm.Trimmed, "dead_ends", asm.DeadEnds)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), asm.Genome)
			return err
		},
	}

	cmd.Flags().BoolVar(&linear, "linear", false, "assemble a linear genome (no wrap-around trim)")
	cmd.Flags().IntVarP(&minOverlap, "min-overlap", "m", config.Default().MinOverlap, "smallest overlap used to join reads")

	return cmd
}
