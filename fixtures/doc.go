// Package fixtures builds deterministic memsnapshot documents for
// tests: a Constructor mutates a Builder in place, and Compose applies
// a list of them in order before handing the accumulated document to
// memsnapshot.Build. The package also ships the canonical end-to-end
// scenarios (empty state, single primitive, array, cyclic pointer,
// partial memory), ready to feed directly to destructure.Run or
// analysis.RunAnalysis.
package fixtures
