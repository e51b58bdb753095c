package beliefprop

import (
	"errors"

	"github.com/nzeh/probmem/fgraph"
	"go.uber.org/zap"
)

// MaxIterations is the default iteration cap. It bounds wall time on
// graphs whose messages oscillate instead of settling.
const MaxIterations = 1000

// ErrNilGraph is returned when Infer is called with a nil graph.
var ErrNilGraph = errors.New("beliefprop: graph is nil")

// Stats reports how an Infer call concluded.
type Stats struct {
	// Iterations is the number of synchronous rounds actually run.
	Iterations int
	// Converged is true iff every edge's Commit reported convergence
	// within the configured iteration cap. When false, every
	// hypothesis's marginal is left undefined — callers must not read
	// Hypothesis.Marginal after a non-converged run.
	Converged bool
}

// Option configures an Infer call.
type Option func(*config)

type config struct {
	maxIterations int
	logger        *zap.Logger
}

func defaultConfig() config {
	return config{maxIterations: MaxIterations, logger: zap.NewNop()}
}

// WithMaxIterations overrides the iteration cap. Exists so tests can
// exercise the non-convergence path cheaply instead of spinning through
// 1000 rounds; production callers should leave the default.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithLogger installs a *zap.Logger that receives one line per Infer
// call reporting iteration count and convergence. A nil logger is a
// no-op; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Infer runs loopy belief propagation over g to a fixed point or the
// iteration cap, whichever comes first. A round counts as converged only
// when every edge's Commit reports convergence — one stable edge says
// nothing about the rest of the graph. On convergence, every vertex's
// ComputeMarginal is called; after a non-convergent run marginals stay
// undefined, per fgraph.Hypothesis's zero-value contract.
func Infer(g *fgraph.FactorGraph, opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, e := range g.Edges() {
		e.Reset()
	}

	var stats Stats
	for iter := 0; iter < cfg.maxIterations; iter++ {
		stats.Iterations = iter + 1

		for _, v := range g.Vertices() {
			v.SendMessages()
		}

		converged := true
		for _, e := range g.Edges() {
			if !e.Commit() {
				converged = false
			}
		}

		if converged {
			stats.Converged = true
			break
		}
	}

	if stats.Converged {
		for _, v := range g.Vertices() {
			v.ComputeMarginal()
		}
	}

	cfg.logger.Debug("beliefprop: inference finished",
		zap.Int("iterations", stats.Iterations), zap.Bool("converged", stats.Converged))

	return stats, nil
}
