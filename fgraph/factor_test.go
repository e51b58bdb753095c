package fgraph_test

import (
	"testing"

	"github.com/nzeh/probmem/fgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactor_PanicsOnWeightTableMismatch(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		fgraph.NewFactor(fgraph.Decomposition, 2, []float64{1, 2, 3})
	})
}

func TestFactor_Equal(t *testing.T) {
	t.Parallel()

	r := fgraph.AddressRange{Start: 0, Size: 1}
	h1 := fgraph.NewHypothesis(fgraph.DeclaredType, r, 1)
	h2 := fgraph.NewHypothesis(fgraph.ContentType, r, 1)

	fa := fgraph.NewFactor(fgraph.DeclarationContent, 2, []float64{1, 1, 1, 1})
	fgraph.Connect(h1, fa)
	fgraph.Connect(h2, fa)

	fb := fgraph.NewFactor(fgraph.DeclarationContent, 2, []float64{2, 2, 2, 2})
	fgraph.Connect(h1, fb)
	fgraph.Connect(h2, fb)

	assert.True(t, fa.Equal(fb), "same kind and same ordered neighbour hypotheses is equal regardless of weights")

	fc := fgraph.NewFactor(fgraph.DeclarationContent, 2, []float64{1, 1, 1, 1})
	fgraph.Connect(h2, fc)
	fgraph.Connect(h1, fc)
	assert.False(t, fa.Equal(fc), "neighbour order matters")

	fd := fgraph.NewFactor(fgraph.Decomposition, 2, []float64{1, 1, 1, 1})
	fgraph.Connect(h1, fd)
	fgraph.Connect(h2, fd)
	assert.False(t, fa.Equal(fd), "kind must match")
}

// TestFactor_Summarize_Degree2 verifies summarize's bit-splicing output
// indirectly: since a degree-1 hypothesis's marginal is exactly the
// normalised message it last received, routing a factor's outgoing
// message through ComputeMarginal lets us check summarize's arithmetic
// against a hand-computed expectation without reaching into unexported
// message state.
func TestFactor_Summarize_Degree2(t *testing.T) {
	t.Parallel()

	r := fgraph.AddressRange{Start: 0, Size: 1}
	h0 := fgraph.NewHypothesis(fgraph.DeclaredType, r, 1)
	h1 := fgraph.NewHypothesis(fgraph.ContentType, r, 1)

	// weights[i]: bit0 = h0's value, bit1 = h1's value.
	// index: 0=(F,F) 1=(T,F) 2=(F,T) 3=(T,T)
	weights := []float64{1, 2, 3, 4}
	f := fgraph.NewFactor(fgraph.DeclarationContent, 2, weights)
	fgraph.Connect(h0, f)
	fgraph.Connect(h1, f)

	for _, e := range f.Neighbours() {
		e.Reset()
	}

	// One round from the symmetric (0.5,0.5) prior on both edges: the
	// message from the factor to h0 (k=0) sums over h1's two values at
	// probability 0.5 each:
	//   v=0 (h0=F): idx 0 (h1=F) + idx 2 (h1=T) = w0*0.5 + w2*0.5 = 1*0.5+3*0.5 = 2
	//   v=1 (h0=T): idx 1 (h1=F) + idx 3 (h1=T) = w1*0.5 + w3*0.5 = 2*0.5+4*0.5 = 3
	// giving marginal p(h0=true) = 3/(2+3) = 0.6.
	f.SendMessages()
	for _, e := range f.Neighbours() {
		e.Commit()
	}
	h0.ComputeMarginal()
	p0, ok := h0.Marginal()
	require.True(t, ok)
	assert.InDelta(t, 0.6, p0, 1e-9)

	// Symmetric reasoning for h1 (k=1):
	//   v=0 (h1=F): idx 0 (h0=F) + idx 1 (h0=T) = w0*0.5 + w1*0.5 = 1*0.5+2*0.5 = 1.5
	//   v=1 (h1=T): idx 2 (h0=F) + idx 3 (h0=T) = w2*0.5 + w3*0.5 = 3*0.5+4*0.5 = 3.5
	// giving marginal p(h1=true) = 3.5/(1.5+3.5) = 0.7.
	h1.ComputeMarginal()
	p1, ok := h1.Marginal()
	require.True(t, ok)
	assert.InDelta(t, 0.7, p1, 1e-9)
}

func TestFactor_Summarize_Degree3BitSplicing(t *testing.T) {
	t.Parallel()

	// A degree-3 factor exercises the bit-splicing index formula for a
	// middle bit (k=1), where both a lower and an upper mask are
	// non-trivial.
	r := fgraph.AddressRange{Start: 0, Size: 1}
	h0 := fgraph.NewHypothesis(fgraph.DeclaredType, r, 1)
	h1 := fgraph.NewHypothesis(fgraph.ContentType, r, 1)
	h2 := fgraph.NewHypothesis(fgraph.DeclaredType, fgraph.AddressRange{Start: 8, Size: 1}, 2)

	weights := make([]float64, 8)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	f := fgraph.NewFactor(fgraph.Content, 3, weights)
	fgraph.Connect(h0, f)
	fgraph.Connect(h1, f)
	fgraph.Connect(h2, f)

	for _, e := range f.Neighbours() {
		e.Reset()
	}
	// summarize for k=1 (a middle bit, where both the lower and upper
	// masks are non-trivial) sums weights at indices {0,1,4,5} for
	// h1=false and {2,3,6,7} for h1=true, each scaled by 0.25 from the
	// symmetric priors on h0 and h2:
	//   false: 0.25*(1+2+5+6) = 3.5   true: 0.25*(3+4+7+8) = 5.5
	// giving p(h1=true) = 5.5/9.
	f.SendMessages()
	for _, e := range f.Neighbours() {
		e.Commit()
	}
	h1.ComputeMarginal()
	p1, ok := h1.Marginal()
	require.True(t, ok)
	assert.InDelta(t, 5.5/9.0, p1, 1e-9)
}

func TestFactor_ComputeMarginalIsNoop(t *testing.T) {
	t.Parallel()
	f := fgraph.NewFactor(fgraph.Decomposition, 1, []float64{1, 1})
	assert.NotPanics(t, f.ComputeMarginal)
}
