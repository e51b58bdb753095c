package fgraph

// FactorGraph owns every vertex and edge constructed during one
// destructuring pass. It is read-only except for message state during
// inference; after inference, hypotheses expose their marginals through
// Hypothesis.Marginal.
//
// FactorGraph is not safe for concurrent use. Construction and
// inference both run on a single goroutine, so the type carries no
// locks; callers must not share a graph across goroutines while
// beliefprop.Infer is running on it.
type FactorGraph struct {
	vertices []Vertex
	edges    []*Edge
}

// New returns an empty FactorGraph.
func New() *FactorGraph {
	return &FactorGraph{}
}

// AddVertex appends v to the graph's vertex list, in insertion order.
// Insertion order is the order beliefprop visits vertices within an
// iteration.
func (g *FactorGraph) AddVertex(v Vertex) {
	g.vertices = append(g.vertices, v)
}

// AddEdge appends e to the graph's edge list. It does not connect e to
// its endpoints — use Connect for that before calling AddEdge.
func (g *FactorGraph) AddEdge(e *Edge) {
	g.edges = append(g.edges, e)
}

// Vertices returns every vertex (hypotheses and factors intermixed) in
// insertion order.
func (g *FactorGraph) Vertices() []Vertex {
	return g.vertices
}

// Edges returns every edge in insertion order.
func (g *FactorGraph) Edges() []*Edge {
	return g.edges
}

// NumVertices reports the number of vertices currently in the graph.
func (g *FactorGraph) NumVertices() int {
	return len(g.vertices)
}

// NumEdges reports the number of edges currently in the graph.
func (g *FactorGraph) NumEdges() int {
	return len(g.edges)
}
