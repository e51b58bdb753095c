package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nzeh/probmem/analysis"
	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/memsnapshot"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	var maxIterations int

	cmd := &cobra.Command{
		Use:   "run <snapshot.json>",
		Short: "Analyze one snapshot and print hypothesis marginals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

			policy, err := flags.weightPolicy()
			if err != nil {
				return err
			}

			res, err := analyzeFile(args[0], logger, analysis.WithWeightPolicy(policy),
				analysis.WithMaxIterations(maxIterations))
			if err != nil {
				return err
			}

			printResult(cmd, res)

			return nil
		},
	}

	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0,
		"override the belief-propagation iteration cap (0 = default)")

	return cmd
}

// analyzeFile loads the snapshot at path and runs one analysis pass over it.
func analyzeFile(path string, logger *zap.Logger, opts ...analysis.Option) (*analysis.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := memsnapshot.Load(f)
	if err != nil {
		return nil, err
	}
	repo, state, err := memsnapshot.Build(doc)
	if err != nil {
		return nil, err
	}

	opts = append(opts, analysis.WithLogger(logger))

	return analysis.RunAnalysis(repo, state, opts...)
}

func printResult(cmd *cobra.Command, res *analysis.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d vertices, %d edges, %d iterations, converged=%v\n",
		res.RunID, res.Graph.NumVertices(), res.Graph.NumEdges(),
		res.BeliefProp.Iterations, res.BeliefProp.Converged)

	for _, v := range res.Graph.Vertices() {
		h, ok := v.(*fgraph.Hypothesis)
		if !ok {
			continue
		}
		p, defined := h.Marginal()
		if !defined {
			fmt.Fprintf(out, "  %-12s %s type=%d p=undefined\n", h.Kind(), h.Range(), h.TypeID())
			continue
		}
		fmt.Fprintf(out, "  %-12s %s type=%d p=%.4f\n", h.Kind(), h.Range(), h.TypeID(), p)
	}
}
