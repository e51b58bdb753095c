package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nzeh/probmem/beliefprop"
	"github.com/nzeh/probmem/destructure"
	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/telemetry"
	"github.com/nzeh/probmem/typesource"
	"go.uber.org/zap"
)

// Result wraps everything one run_analysis pass produces: the
// constructed graph (with marginals populated iff BeliefProp.Converged),
// and the two stages' diagnostics. RunID distinguishes runs against the
// same snapshot in logs and metrics.
type Result struct {
	RunID       uuid.UUID
	Graph       *fgraph.FactorGraph
	Destructure destructure.Stats
	BeliefProp  beliefprop.Stats
}

// Option configures a RunAnalysis call.
type Option func(*config)

type config struct {
	weights       destructure.WeightPolicy
	maxIterations int
	recorder      telemetry.Recorder
	logger        *zap.Logger
}

func defaultConfig() config {
	return config{
		weights:       destructure.UniformWeights,
		maxIterations: beliefprop.MaxIterations,
		recorder:      telemetry.Nop,
		logger:        zap.NewNop(),
	}
}

// WithWeightPolicy selects the destructure.WeightPolicy used when
// building factors. Defaults to destructure.UniformWeights.
func WithWeightPolicy(p destructure.WeightPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.weights = p
		}
	}
}

// WithMaxIterations overrides beliefprop's iteration cap.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithRecorder installs a telemetry.Recorder that observes both stages.
// Defaults to telemetry.Nop.
func WithRecorder(r telemetry.Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithLogger installs a *zap.Logger shared by both stages.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// RunAnalysis is the core's single public entry point: build the factor
// graph from repo and proc, then run belief propagation over it. It returns
// an error wrapping destructure.ErrNoTypedBlockLayer or
// destructure.ErrUnknownTypeID when construction itself fails fatally; a non-convergent inference is not an error — Result's
// BeliefProp.Converged reports it, and every hypothesis marginal is
// simply left undefined.
func RunAnalysis(repo typesource.TypeRepository, proc typesource.ProcessState, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	cfg.logger.Info("analysis: starting run", zap.Stringer("run_id", runID))

	graph, dstats, err := destructure.Run(repo, proc,
		destructure.WithWeightPolicy(cfg.weights), destructure.WithLogger(cfg.logger))
	if err != nil {
		cfg.logger.Error("analysis: destructuring failed", zap.Stringer("run_id", runID), zap.Error(err))
		return nil, fmt.Errorf("analysis: run %s: %w", runID, err)
	}
	cfg.recorder.ObserveDestructure(dstats.BlocksSeen, dstats.HypothesesCreated, dstats.FactorsCreated, dstats.SubtreesSkipped)

	bstats, err := beliefprop.Infer(graph, beliefprop.WithMaxIterations(cfg.maxIterations), beliefprop.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("analysis: run %s: %w", runID, err)
	}
	cfg.recorder.ObserveInference(bstats.Iterations, bstats.Converged)

	cfg.logger.Info("analysis: run finished",
		zap.Stringer("run_id", runID), zap.Int("iterations", bstats.Iterations), zap.Bool("converged", bstats.Converged))

	return &Result{RunID: runID, Graph: graph, Destructure: dstats, BeliefProp: bstats}, nil
}
