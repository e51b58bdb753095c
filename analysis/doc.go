// Package analysis wires destructure and beliefprop together behind a
// single public entry point: RunAnalysis takes a
// type repository and a process state, builds the factor graph, runs
// inference over it, and returns both alongside diagnostics from each
// stage. Every other package in this module is reachable only through
// this contract or directly, for callers that want finer control.
package analysis
