// Package fgraph defines the factor graph used to infer, from a process
// memory snapshot and a type repository, how likely it is that a given
// address range holds an object of a given type.
//
// The graph is bipartite by construction: every Edge connects exactly one
// Hypothesis to exactly one Factor. A Hypothesis is a variable node —
// DeclaredType, ContentType, or the anchor variant Observation. A Factor
// encodes a structural relation between hypotheses — Decomposition,
// Pointer, Content, or DeclarationContent — as an unnormalised joint
// potential over its neighbours' boolean truth values.
//
// Inference is loopy belief propagation, synchronous (Jacobi-style): every
// vertex reads the previous round's messages from the out slots of its
// incident edges and writes the next round's messages into the in slots;
// a round boundary (Edge.Commit) copies in to out and reports whether that
// edge's message has stabilized.
//
// fgraph owns the lifetime of every vertex and edge. Vertices hold
// non-owning back-references to their incident edges so the object graph,
// despite containing cycles (a Pointer factor may loop back on itself),
// never needs shared ownership.
//
// This package holds no logic for deciding which hypotheses or factors to
// create — that is fgbuilder's job — and no iteration loop — that is
// beliefprop's job. fgraph only knows how a single vertex updates its
// outgoing messages given its neighbours' incoming ones.
package fgraph
