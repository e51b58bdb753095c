// Package fgbuilder deduplicates hypotheses and factors by semantic
// identity while a factor graph is under construction, and wires the
// edges connecting them. It is the only package that mutates a
// fgraph.FactorGraph after creation; destructure drives it but holds no
// graph-mutation logic of its own.
package fgbuilder
