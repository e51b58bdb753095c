package fgbuilder

import (
	"fmt"
	"strings"

	"github.com/nzeh/probmem/fgraph"
)

// hypKey identifies a type hypothesis (DeclaredType or ContentType) by
// its semantic identity: kind, range, and type id. Observations are
// never represented by a hypKey — they dedup by pointer identity, kept
// in a separate set.
type hypKey struct {
	kind   fgraph.HypothesisKind
	start  uint64
	size   uint64
	typeID fgraph.TypeID
}

// Builder deduplicates hypotheses and factors by semantic identity while
// assembling one FactorGraph. It is not safe for concurrent use — a
// single destructuring pass drives it from one goroutine, matching the
// graph it builds (see fgraph.FactorGraph's concurrency note).
type Builder struct {
	graph *fgraph.FactorGraph

	typeHyps     map[hypKey]*fgraph.Hypothesis
	observations map[*fgraph.Hypothesis]struct{}
	hypOrder     []*fgraph.Hypothesis

	factors map[string]*fgraph.Factor
}

// New returns a Builder wrapping a fresh, empty FactorGraph.
func New() *Builder {
	return &Builder{
		graph:        fgraph.New(),
		typeHyps:     make(map[hypKey]*fgraph.Hypothesis),
		observations: make(map[*fgraph.Hypothesis]struct{}),
		factors:      make(map[string]*fgraph.Factor),
	}
}

// AddHypothesis inserts h if no semantically equal hypothesis already
// exists in the catalogue, and reports whether it did so. Type
// hypotheses (DeclaredType, ContentType) dedup by (kind, range, type id);
// observations dedup by pointer identity, so passing the same *h twice
// is the only way to get isNew=false for one.
func (b *Builder) AddHypothesis(h *fgraph.Hypothesis) (canonical *fgraph.Hypothesis, isNew bool) {
	if h.Kind() == fgraph.Observation {
		if _, ok := b.observations[h]; ok {
			return h, false
		}
		b.observations[h] = struct{}{}
		b.graph.AddVertex(h)
		b.hypOrder = append(b.hypOrder, h)

		return h, true
	}

	key := hypKey{kind: h.Kind(), start: h.Range().Start, size: h.Range().Size, typeID: h.TypeID()}
	if existing, ok := b.typeHyps[key]; ok {
		return existing, false
	}
	b.typeHyps[key] = h
	b.graph.AddVertex(h)
	b.hypOrder = append(b.hypOrder, h)

	return h, true
}

// AddFactor inserts a factor of kind over neighbours (already canonical
// hypotheses, in the order that will index the weight table) unless a
// factor of the same kind over the same ordered neighbour set already
// exists. On insertion it creates one edge per neighbour and adds both
// the factor and its edges to the graph.
func (b *Builder) AddFactor(kind fgraph.FactorKind, neighbours []*fgraph.Hypothesis, weights []float64) (canonical *fgraph.Factor, isNew bool) {
	key := factorKey(kind, neighbours)
	if existing, ok := b.factors[key]; ok {
		return existing, false
	}

	f := fgraph.NewFactor(kind, len(neighbours), weights)
	for _, h := range neighbours {
		e := fgraph.Connect(h, f)
		b.graph.AddEdge(e)
	}
	b.graph.AddVertex(f)
	b.factors[key] = f

	return f, true
}

// Graph yields the graph under construction. Safe to call at any point;
// the same instance is mutated in place by AddHypothesis/AddFactor.
func (b *Builder) Graph() *fgraph.FactorGraph {
	return b.graph
}

// Hypotheses returns every hypothesis added so far, in insertion order.
// It is a read-only snapshot for callers (the conflict-subgraph hook,
// telemetry) that need to inspect catalogue contents without reaching
// into Builder's private maps.
func (b *Builder) Hypotheses() []*fgraph.Hypothesis {
	out := make([]*fgraph.Hypothesis, len(b.hypOrder))
	copy(out, b.hypOrder)

	return out
}

// factorKey renders a factor's dedup key as kind followed by the
// pointer identity of each neighbour, in order — order matters because
// neighbour position indexes the weight table, so two factors over the
// same hypotheses in different orders are not interchangeable.
func factorKey(kind fgraph.FactorKind, neighbours []*fgraph.Hypothesis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", kind)
	for _, h := range neighbours {
		fmt.Fprintf(&sb, "|%p", h)
	}

	return sb.String()
}
