package destructure

import "go.uber.org/zap"

// Option configures a destructuring pass. Use with Run(repo, proc, opts...).
type Option func(*config)

type config struct {
	weights WeightPolicy
	logger  *zap.Logger
}

func defaultConfig() config {
	return config{weights: UniformWeights, logger: zap.NewNop()}
}

// WithWeightPolicy selects the factor weight tables attached to every
// DeclarationContent, Decomposition, and Pointer factor the walk creates.
// Defaults to UniformWeights. Passing a nil policy has no effect.
func WithWeightPolicy(p WeightPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.weights = p
		}
	}
}

// WithLogger installs a *zap.Logger that receives one Debug-level line
// per swallowed sub-tree (unresolvable type, misaligned array, missing
// field, dangling pointer), named by the reason it was skipped. Passing
// a nil logger has no effect; the default is a no-op logger, matching
// dfs's hook-injection style but for log lines instead of control flow.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
