package fgraph

// Vertex is the two-way polymorphic surface shared by Hypothesis and
// Factor: both kinds of vertex know how to push messages onto their
// incident edges and, once converged, compute whatever readout they
// expose. The subvariant (DeclaredType vs ContentType vs Observation,
// or Decomposition vs Pointer vs ...) only matters during construction
// and for semantic-equality checks in fgbuilder — it never changes how
// message passing dispatches.
type Vertex interface {
	SendMessages()
	ComputeMarginal()
}

// Hypothesis is a variable node of the factor graph: either a type
// hypothesis (DeclaredType or ContentType) over an address range, or a
// payload-free Observation anchor.
type Hypothesis struct {
	kind  HypothesisKind
	rng   AddressRange
	tid   TypeID
	edges []*Edge

	hasMarginal bool
	marginal    float64
}

// NewHypothesis creates a DeclaredType or ContentType hypothesis. Passing
// kind == Observation panics; use NewObservation for that variant, since
// an Observation carries no range or type payload.
func NewHypothesis(kind HypothesisKind, rng AddressRange, tid TypeID) *Hypothesis {
	if kind == Observation {
		panic("fgraph: NewHypothesis called with kind Observation; use NewObservation")
	}

	return &Hypothesis{kind: kind, rng: rng, tid: tid}
}

// NewObservation creates a payload-free anchor hypothesis. Two
// observations are equal only if they are the same vertex (identity).
func NewObservation() *Hypothesis {
	return &Hypothesis{kind: Observation}
}

// Kind reports which of the three hypothesis variants this is.
func (h *Hypothesis) Kind() HypothesisKind {
	return h.kind
}

// Range returns the hypothesis's address range. It is only meaningful for
// DeclaredType and ContentType hypotheses; Observation returns the zero
// range.
func (h *Hypothesis) Range() AddressRange {
	return h.rng
}

// TypeID returns the hypothesis's asserted type. It is only meaningful
// for DeclaredType and ContentType hypotheses.
func (h *Hypothesis) TypeID() TypeID {
	return h.tid
}

// Neighbours returns the edges incident on this hypothesis, in the order
// they were attached.
func (h *Hypothesis) Neighbours() []*Edge {
	return h.edges
}

// Marginal returns the hypothesis's marginal probability of being true
// and whether it is defined. It is undefined until ComputeMarginal has
// run after a converged inference pass.
func (h *Hypothesis) Marginal() (p float64, defined bool) {
	return h.marginal, h.hasMarginal
}

// Equal reports semantic equality: same kind, and for type hypotheses
// the same range and type id; observations are equal only to
// themselves.
func (h *Hypothesis) Equal(o *Hypothesis) bool {
	if h == o {
		return true
	}
	if o == nil || h.kind != o.kind {
		return false
	}
	if h.kind == Observation {
		return false // distinct observations are never equal
	}

	return h.rng == o.rng && h.tid == o.tid
}

// addEdge attaches e to this hypothesis's neighbour list. Called only by
// the edge constructor.
func (h *Hypothesis) addEdge(e *Edge) {
	h.edges = append(h.edges, e)
}

// SendMessages implements the hypothesis update rule: for every incident
// edge e, the outgoing message is the normalised product of the messages
// arriving on every *other* incident edge.
func (h *Hypothesis) SendMessages() {
	for _, e := range h.edges {
		prod := Message{WFalse: 1, WTrue: 1}
		for _, f := range h.edges {
			if f == e {
				continue
			}
			m := f.receiveAtHypothesis()
			prod.WFalse *= m.WFalse
			prod.WTrue *= m.WTrue
		}
		e.sendFromHypothesis(prod.normalized())
	}
}

// ComputeMarginal sets the hypothesis's marginal to the normalised
// product of all incoming messages: p(true) = prod[1] / (prod[0]+prod[1]).
func (h *Hypothesis) ComputeMarginal() {
	prod := Message{WFalse: 1, WTrue: 1}
	for _, e := range h.edges {
		m := e.receiveAtHypothesis()
		prod.WFalse *= m.WFalse
		prod.WTrue *= m.WTrue
	}
	h.marginal = prod.probability()
	h.hasMarginal = true
}
