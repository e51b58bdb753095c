package destructure

import (
	"github.com/nzeh/probmem/fgbuilder"
	"github.com/nzeh/probmem/fgraph"
	"go.uber.org/zap"
)

// BuildConflictSubgraph is a hook for a planned pass that would add
// contradiction factors between hypotheses whose ranges overlap without
// being in a nesting (member-of-member) relationship. The current body
// is an O(n^2) intersection scan that logs candidate conflicting pairs
// through logger; it adds no factors. Call it after a destructuring
// pass if you want the candidate pairs logged; skipping the call changes
// nothing about the resulting graph.
func BuildConflictSubgraph(b *fgbuilder.Builder, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	hyps := b.Hypotheses()
	for i := 0; i < len(hyps); i++ {
		hi := hyps[i]
		if hi.Kind() != fgraph.DeclaredType && hi.Kind() != fgraph.ContentType {
			continue // Observation carries no range
		}
		for j := i + 1; j < len(hyps); j++ {
			hj := hyps[j]
			if hj.Kind() != hi.Kind() {
				continue
			}
			if !hi.Range().Intersects(hj.Range()) {
				continue
			}
			// Nesting (member-of-member) detection is not implemented;
			// every intersecting pair is logged as a candidate.
			logger.Debug("destructure: candidate conflict pair",
				zap.Stringer("a", hi.Range()), zap.Stringer("b", hj.Range()))
		}
	}
}
