package fgraph

// convergenceLow and convergenceHigh bound the ratio out_new/out_old that
// Edge.Commit treats as "this edge has stabilized".
const (
	convergenceLow  = 0.99
	convergenceHigh = 1.01
)

// Edge is an undirected link between one Hypothesis and one Factor. It
// holds two message slots per direction: in[side] is the most recent
// message written by the vertex at that side, not yet visible to the
// other side's reader; out[side] is what the other side currently reads.
// Commit copies in to out at a synchronous round boundary.
//
// Index 0 always denotes the hypothesis side, index 1 the factor side —
// the bipartite structure is enforced by the types of hyp and fac, not by
// a generic endpoint list.
type Edge struct {
	hyp *Hypothesis
	fac *Factor

	in  [2]Message
	out [2]Message
}

// Connect creates an edge between h and f, appends it to both of their
// neighbour lists, and returns it. It does not add the edge to any
// FactorGraph; callers (fgbuilder) are responsible for that.
func Connect(h *Hypothesis, f *Factor) *Edge {
	e := &Edge{
		hyp: h,
		fac: f,
		in:  [2]Message{{WFalse: 0.5, WTrue: 0.5}, {WFalse: 0.5, WTrue: 0.5}},
		out: [2]Message{{WFalse: 0.5, WTrue: 0.5}, {WFalse: 0.5, WTrue: 0.5}},
	}
	h.addEdge(e)
	f.addEdge(e)

	return e
}

// Hypothesis returns this edge's hypothesis endpoint.
func (e *Edge) Hypothesis() *Hypothesis {
	return e.hyp
}

// Factor returns this edge's factor endpoint.
func (e *Edge) Factor() *Factor {
	return e.fac
}

// sendFromHypothesis writes msg into the in-slot belonging to the
// hypothesis side.
func (e *Edge) sendFromHypothesis(msg Message) {
	e.in[0] = msg
}

// sendFromFactor writes msg into the in-slot belonging to the factor
// side.
func (e *Edge) sendFromFactor(msg Message) {
	e.in[1] = msg
}

// receiveAtHypothesis returns the message arriving at the hypothesis side
// — i.e. what the factor side last committed.
func (e *Edge) receiveAtHypothesis() Message {
	return e.out[1]
}

// receiveAtFactor returns the message arriving at the factor side — i.e.
// what the hypothesis side last committed.
func (e *Edge) receiveAtFactor() Message {
	return e.out[0]
}

// Reset sets all four message slots to (0.5, 0.5), the symmetric prior.
func (e *Edge) Reset() {
	sym := Message{WFalse: 0.5, WTrue: 0.5}
	e.in = [2]Message{sym, sym}
	e.out = [2]Message{sym, sym}
}

// Commit copies in to out and reports whether every component's ratio
// out_new/out_old lies in [0.99, 1.01]. A zero previous value is treated
// as non-converged rather than dividing by zero — reset() and
// normalisation otherwise keep values strictly positive, so a zero only
// occurs when a degenerate (all-zero) weight table has starved a
// message, which is not a state we can call stable.
func (e *Edge) Commit() bool {
	converged := true
	for side := 0; side < 2; side++ {
		for _, pair := range [2][2]float64{
			{e.out[side].WFalse, e.in[side].WFalse},
			{e.out[side].WTrue, e.in[side].WTrue},
		} {
			oldVal, newVal := pair[0], pair[1]
			if oldVal == 0 {
				// A zero previous value makes the ratio undefined;
				// treat it as non-converged rather than special-casing
				// it to "no change".
				converged = false
				continue
			}
			ratio := newVal / oldVal
			if ratio < convergenceLow || ratio > convergenceHigh {
				converged = false
			}
		}
	}
	e.out = e.in

	return converged
}
