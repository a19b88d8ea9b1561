// Package cli implements the apsp command-line interface.
//
// The commands read a batch of reads (plain one-per-line or FASTA) from a
// file or stdin, build the generalized suffix tree, and then:
//   - overlap: print the overlap graph (text or JSON)
//   - assemble: print the greedily reconstructed genome
//   - check: compare the overlap matrix with the brute-force reference
//
// # Logging
//
// Progress goes to stderr through charmbracelet/log; --verbose (-v) enables
// debug output. The logger travels in the command context.
//
// # Configuration
//
// --config points at a TOML file (see internal/config). Flags set on the
// command line override file values.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/internal/config"
)

var (
	version = "dev" // semantic version, set by SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds state shared by the root command and its subcommands.
type app struct {
	verbose  bool
	cfgPath  string
	alphabet string
	cfg      config.Config
}

// Execute runs the apsp CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Output goes to the command's
// OutOrStdout, logs to ErrOrStderr, so tests can redirect both.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "apsp",
		Short: "apsp computes all-pairs suffix-prefix overlaps of sequencing reads",
		Long: `apsp builds a generalized suffix tree over a batch of reads and computes,
for every ordered pair, the longest suffix of one read that is a prefix of the other.
The overlaps can be printed as a graph or used to reassemble the genome.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alphabet") {
				cfg.Alphabet = a.alphabet
			}
			a.cfg = cfg
			loggerFromContext(cmd.Context()).Debug("configuration", "file", a.cfgPath, "alphabet", cfg.Alphabet,
				"min_overlap", cfg.MinOverlap, "circular", cfg.Circular)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("apsp %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", os.Getenv("APSP_CONFIG"), "TOML configuration file")
	root.PersistentFlags().StringVar(&a.alphabet, "alphabet", config.Default().Alphabet, "accepted read symbols, in traversal order")

	root.AddCommand(a.overlapCmd())
	root.AddCommand(a.assembleCmd())
	root.AddCommand(a.checkCmd())

	return root
}
