// Package beliefprop runs synchronous loopy belief propagation over a
// fgraph.FactorGraph: reset every edge, iterate vertex SendMessages and
// edge Commit rounds up to a cap, and, on convergence, call
// ComputeMarginal on every vertex. Vertex visit order within one
// iteration does not affect the fixed point — every vertex reads only
// messages committed by the previous iteration — but determines how
// quickly floating-point drift settles, so Infer always visits vertices
// in the graph's insertion order.
package beliefprop
