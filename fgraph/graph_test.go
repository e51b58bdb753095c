package fgraph_test

import (
	"testing"

	"github.com/nzeh/probmem/fgraph"
	"github.com/stretchr/testify/assert"
)

func TestFactorGraph_AddVertexAndEdge(t *testing.T) {
	t.Parallel()

	g := fgraph.New()
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())

	h := fgraph.NewHypothesis(fgraph.DeclaredType, fgraph.AddressRange{Start: 0, Size: 1}, 1)
	f := fgraph.NewFactor(fgraph.Decomposition, 1, []float64{1, 1})
	e := fgraph.Connect(h, f)

	g.AddVertex(h)
	g.AddVertex(f)
	g.AddEdge(e)

	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []fgraph.Vertex{h, f}, g.Vertices())
	assert.Equal(t, []*fgraph.Edge{e}, g.Edges())
}

func TestFactorGraph_EmptyGraph(t *testing.T) {
	t.Parallel()
	g := fgraph.New()
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
}
