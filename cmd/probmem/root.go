package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nzeh/probmem/destructure"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	verbose bool
	weights string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "probmem",
		Short: "Probabilistic memory type inference over process snapshots",
		Long: `probmem builds a factor graph from a process-memory snapshot and a
type table, runs loopy belief propagation over it, and reports the
probability that each address range holds an object of each type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug-level logging")
	cmd.PersistentFlags().StringVar(&flags.weights, "weights", "forcing",
		`factor weight policy: "uniform" (uncalibrated zeros) or "forcing" (demo tables)`)

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

// logger builds a zap logger honoring --verbose.
func (f *rootFlags) logger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if f.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// weightPolicy resolves --weights to a destructure.WeightPolicy.
func (f *rootFlags) weightPolicy() (destructure.WeightPolicy, error) {
	switch f.weights {
	case "uniform":
		return destructure.UniformWeights, nil
	case "forcing":
		return destructure.ForcingWeights, nil
	default:
		return nil, fmt.Errorf("unknown weight policy %q (want uniform or forcing)", f.weights)
	}
}
