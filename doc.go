// Package probmem infers, from a snapshot of a process's memory and a
// repository of declared types, the probability that each address range
// holds an object of each type.
//
// It builds a factor graph whose variable nodes are hypotheses of the
// form "the range [a, a+n) holds an object of type T" and whose factors
// encode structural relations between them (array and record
// decomposition, pointer chasing, declaration-vs-content agreement),
// then runs synchronous loopy belief propagation over that graph and
// reads each hypothesis's marginal.
//
// Everything is organized under focused subpackages:
//
//	fgraph/      — vertices, factors, edges, message-passing update rules
//	fgbuilder/   — deduplicating graph construction
//	destructure/ — the recursive walk from typed blocks to graph fragments
//	beliefprop/  — the iterative inference loop and convergence detection
//	analysis/    — the single public entry point tying the stages together
//	typesource/  — contracts for the external type repository and process state
//	memsnapshot/ — a JSON-backed reference implementation of those contracts
//	fixtures/    — deterministic snapshot builders for tests
//	telemetry/   — optional Prometheus instrumentation
//	cmd/probmem/ — the CLI: analyze a snapshot file, or serve an endpoint
//
// Start with analysis.RunAnalysis for the one-call path, or drive
// destructure.Run and beliefprop.Infer directly for finer control.
package probmem
