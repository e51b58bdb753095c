package fgbuilder_test

import (
	"testing"

	"github.com/nzeh/probmem/fgbuilder"
	"github.com/nzeh/probmem/fgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddHypothesis_DedupsTypeHypotheses(t *testing.T) {
	t.Parallel()

	b := fgbuilder.New()
	r := fgraph.AddressRange{Start: 0x1000, Size: 4}

	h1 := fgraph.NewHypothesis(fgraph.DeclaredType, r, 1)
	canonical1, isNew1 := b.AddHypothesis(h1)
	assert.True(t, isNew1)
	assert.Same(t, h1, canonical1)

	h2 := fgraph.NewHypothesis(fgraph.DeclaredType, r, 1) // same kind/range/type, different pointer
	canonical2, isNew2 := b.AddHypothesis(h2)
	assert.False(t, isNew2)
	assert.Same(t, h1, canonical2, "semantically equal hypothesis must return the existing canonical pointer")

	h3 := fgraph.NewHypothesis(fgraph.ContentType, r, 1) // different kind
	_, isNew3 := b.AddHypothesis(h3)
	assert.True(t, isNew3)

	require.Len(t, b.Hypotheses(), 2)
}

func TestBuilder_AddHypothesis_ObservationsDedupByIdentityOnly(t *testing.T) {
	t.Parallel()

	b := fgbuilder.New()
	o1 := fgraph.NewObservation()
	o2 := fgraph.NewObservation()

	_, isNew1 := b.AddHypothesis(o1)
	assert.True(t, isNew1)

	_, isNew2 := b.AddHypothesis(o2)
	assert.True(t, isNew2, "a distinct observation pointer is always new")

	_, isNew3 := b.AddHypothesis(o1)
	assert.False(t, isNew3, "re-adding the same observation pointer is not new")

	assert.Len(t, b.Hypotheses(), 2)
}

func TestBuilder_AddFactor_DedupsByKindAndOrderedNeighbours(t *testing.T) {
	t.Parallel()

	b := fgbuilder.New()
	r := fgraph.AddressRange{Start: 0, Size: 4}
	declared, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.DeclaredType, r, 1))
	content, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.ContentType, r, 1))

	weights := []float64{1, 1, 1, 1}
	f1, isNew1 := b.AddFactor(fgraph.DeclarationContent, []*fgraph.Hypothesis{declared, content}, weights)
	assert.True(t, isNew1)

	f2, isNew2 := b.AddFactor(fgraph.DeclarationContent, []*fgraph.Hypothesis{declared, content}, weights)
	assert.False(t, isNew2)
	assert.Same(t, f1, f2)

	// Swapping neighbour order changes weight-table semantics, so it is
	// a distinct factor even with the same kind and endpoints.
	f3, isNew3 := b.AddFactor(fgraph.DeclarationContent, []*fgraph.Hypothesis{content, declared}, weights)
	assert.True(t, isNew3)
	assert.NotSame(t, f1, f3)
}

func TestBuilder_AddFactor_WiresEdgesIntoGraph(t *testing.T) {
	t.Parallel()

	b := fgbuilder.New()
	r := fgraph.AddressRange{Start: 0, Size: 4}
	declared, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.DeclaredType, r, 1))
	content, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.ContentType, r, 1))

	f, isNew := b.AddFactor(fgraph.DeclarationContent, []*fgraph.Hypothesis{declared, content}, []float64{1, 1, 1, 1})
	require.True(t, isNew)

	g := b.Graph()
	assert.Equal(t, 3, g.NumVertices()) // declared, content, factor
	assert.Equal(t, 2, g.NumEdges())
	require.Len(t, f.Neighbours(), 2)
	assert.Same(t, declared, f.Neighbours()[0].Hypothesis())
	assert.Same(t, content, f.Neighbours()[1].Hypothesis())
}

func TestBuilder_Hypotheses_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	b := fgbuilder.New()
	r1 := fgraph.AddressRange{Start: 0, Size: 1}
	r2 := fgraph.AddressRange{Start: 1, Size: 1}
	h1, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.DeclaredType, r1, 1))
	h2, _ := b.AddHypothesis(fgraph.NewHypothesis(fgraph.DeclaredType, r2, 1))

	got := b.Hypotheses()
	require.Len(t, got, 2)
	assert.Same(t, h1, got[0])
	assert.Same(t, h2, got[1])

	// Mutating the returned slice must not affect the builder's state.
	got[0] = nil
	assert.Same(t, h1, b.Hypotheses()[0])
}
