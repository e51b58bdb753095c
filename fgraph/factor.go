package fgraph

import "fmt"

// Factor is a vertex of the factor graph representing a joint,
// unnormalised probability distribution (its weight table) over the
// boolean truth values of its neighbouring hypotheses.
//
// Weight index i encodes the assignment whose j-th neighbour's truth
// value is bit j of i (bit 0 = first neighbour, in Neighbours() order).
type Factor struct {
	kind    FactorKind
	edges   []*Edge
	weights []float64
}

// NewFactor creates a factor of the given kind over neighbours, wired to
// the weight table. len(weights) must equal 2^len(neighbours); this is a
// construction-time contract violation by the caller (fgbuilder), not a
// data-dependent error, so it panics rather than returning an error.
//
// The returned Factor has no edges yet; call Connect for each neighbour
// to wire it into a FactorGraph.
func NewFactor(kind FactorKind, neighbours int, weights []float64) *Factor {
	want := 1 << uint(neighbours)
	if len(weights) != want {
		panic(fmt.Sprintf("fgraph: NewFactor: %s has %d neighbours, want %d weights, got %d",
			kind, neighbours, want, len(weights)))
	}

	return &Factor{kind: kind, weights: weights, edges: make([]*Edge, 0, neighbours)}
}

// Kind reports which of the four factor variants this is.
func (f *Factor) Kind() FactorKind {
	return f.kind
}

// Neighbours returns the edges incident on this factor, in definition
// order — the order that indexes bits of the weight table.
func (f *Factor) Neighbours() []*Edge {
	return f.edges
}

// Weights returns the factor's weight table, of length 2^degree.
func (f *Factor) Weights() []float64 {
	return f.weights
}

// Equal reports semantic equality: same kind and the same ordered set of
// neighbour hypotheses (compared by identity, since hypotheses are
// deduplicated by fgbuilder before factors reference them).
func (f *Factor) Equal(o *Factor) bool {
	if o == nil || f.kind != o.kind || len(f.edges) != len(o.edges) {
		return false
	}
	for i, e := range f.edges {
		if e.Hypothesis() != o.edges[i].Hypothesis() {
			return false
		}
	}

	return true
}

// addEdge attaches e to this factor's neighbour list. Called only by the
// edge constructor, in the order neighbours are connected.
func (f *Factor) addEdge(e *Edge) {
	f.edges = append(f.edges, e)
}

// SendMessages implements the factor update rule: variable elimination
// over the joint potential, one outgoing message per neighbour.
func (f *Factor) SendMessages() {
	for k := range f.edges {
		f.edges[k].sendFromFactor(f.summarize(k))
	}
}

// summarize computes the message to send along the k-th edge by summing,
// over all weight-table indices whose bit k equals v, the weight at that
// index times the product of incoming messages implied by the index's
// other bits. It enumerates the 2^(degree-1) relevant indices by
// splicing bit v into position k of a counter that ranges over the
// degree-1 remaining bits — the standard trick that avoids allocating an
// explicit assignment vector per term.
func (f *Factor) summarize(k int) Message {
	degree := len(f.edges)
	thisBit := uint(1) << uint(k)
	upperMask := ^uint(0) << uint(k) // bits at position k and above
	lowerMask := ^upperMask          // bits below position k

	var out Message
	count := len(f.weights) / 2
	for v := 0; v < 2; v++ {
		thisBitValue := uint(v) * thisBit
		var sum float64
		for j := 0; j < count; j++ {
			// Splice thisBitValue between the lower bits of j (below
			// position k, left untouched) and its upper bits (at or
			// above k, shifted up by one to make room).
			idx := ((uint(j) & upperMask) << 1) + thisBitValue + (uint(j) & lowerMask)
			term := f.weights[idx]
			for other, bit := 0, uint(1); other < degree; other, bit = other+1, bit<<1 {
				if other == k {
					continue
				}
				val := 0
				if idx&bit != 0 {
					val = 1
				}
				term *= f.edges[other].receiveAtFactor().at(val)
			}
			sum += term
		}
		if v == 0 {
			out.WFalse = sum
		} else {
			out.WTrue = sum
		}
	}

	return out
}

// ComputeMarginal is a no-op: factors carry no marginal of interest.
func (f *Factor) ComputeMarginal() {}
