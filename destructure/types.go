package destructure

import "errors"

var (
	// ErrNoTypedBlockLayer is returned when the process state exposes no
	// typed-block layer at all; there is nothing to seed the walk from.
	ErrNoTypedBlockLayer = errors.New("destructure: process state has no typed-block layer")

	// ErrUnknownTypeID is returned when a seed block's type id cannot be
	// resolved by the type repository. Unlike nested lookup failures
	// (silently skipped sub-trees), a seed block with no known type
	// aborts the whole run — the caller handed us bad input, not an
	// internal structural surprise.
	ErrUnknownTypeID = errors.New("destructure: unknown type id")
)

// Stats accumulates diagnostics over one destructuring pass.
type Stats struct {
	// BlocksSeen is the number of top-level typed blocks the walk was
	// seeded from.
	BlocksSeen int
	// HypothesesCreated counts hypotheses newly inserted into the
	// builder's catalogue (re-visits via dedup do not count).
	HypothesesCreated int
	// FactorsCreated counts factors newly inserted into the builder's
	// catalogue.
	FactorsCreated int
	// SubtreesSkipped counts sub-trees abandoned because of a silently
	// swallowed failure: an unresolvable type, a misaligned array size,
	// an unreadable field, or a dangling pointer.
	SubtreesSkipped int
}
