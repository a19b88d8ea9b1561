package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/overlap"
)

// errMismatch is returned by check when the matrices differ.
var errMismatch = errors.New("overlap matrix differs from brute-force reference")

// maxReported caps the mismatching cells printed by check.
const maxReported = 10

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Compare the overlap matrix with the brute-force reference",
		Long: `Compute the overlap matrix twice, through the suffix tree and by comparing every
pair of reads directly, and report any disagreement. Exits non-zero on mismatch.
The reference is quadratic in read length; use it on small inputs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			want, err := overlap.BruteForce(b.store)
			if err != nil {
				return err
			}
			prog.done("Computed brute-force reference")

			cells, err := matrix.Diff(b.res.Matrix, want)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cells) == 0 {
				_, err = fmt.Fprintf(out, "ok: %d reads, %d cells match\n", b.store.Len(), b.store.Len()*b.store.Len())
				return err
			}
			if err := writeMismatches(out, cells); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d cells", errMismatch, len(cells))
		},
	}
}

// writeMismatches prints up to maxReported cells, one per line, and a
// count of the rest.
func writeMismatches(w io.Writer, cells []matrix.Cell) error {
	for i, c := range cells {
		if i == maxReported {
			_, err := fmt.Fprintf(w, "... %d more\n", len(cells)-maxReported)
			return err
		}
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}

	return nil
}
