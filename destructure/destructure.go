package destructure

import (
	"fmt"

	"github.com/nzeh/probmem/fgbuilder"
	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/typesource"
	"go.uber.org/zap"
)

// Run seeds a destructuring walk from every typed block proc exposes,
// recursing through arrays, records, and pointers, and returns the
// resulting graph together with diagnostics. It fails only when proc
// carries no typed-block layer at all, or when a seed block's type id is
// unknown to repo; every other failure (a bad cast, a missing field, a
// dangling pointer, deeper in the walk) is swallowed and counted in the
// returned Stats.
func Run(repo typesource.TypeRepository, proc typesource.ProcessState, opts ...Option) (*fgraph.FactorGraph, Stats, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	blocks, ok := proc.TypedBlocks()
	if !ok {
		return nil, Stats{}, ErrNoTypedBlockLayer
	}

	d := &walker{
		repo:      repo,
		proc:      proc,
		builder:   fgbuilder.New(),
		cfg:       cfg,
		contentOf: make(map[*fgraph.Hypothesis]*fgraph.Hypothesis),
	}

	for _, blk := range blocks {
		d.stats.BlocksSeen++
		if _, known := repo.GetType(blk.TypeID); !known {
			return nil, d.stats, fmt.Errorf("destructure: block at %s: %w: %d", blk.Range, ErrUnknownTypeID, blk.TypeID)
		}
		d.destructure(blk.Range, blk.TypeID)
	}

	return d.builder.Graph(), d.stats, nil
}

// walker carries the mutable state of one destructuring pass: the
// builder being filled, the external collaborators it reads from, and
// a side table recalling each declared hypothesis's content hypothesis
// (or nil) across revisits, since the builder's dedup short-circuits
// before a reused call site can recompute it.
type walker struct {
	repo    typesource.TypeRepository
	proc    typesource.ProcessState
	builder *fgbuilder.Builder
	cfg     config
	stats   Stats

	contentOf map[*fgraph.Hypothesis]*fgraph.Hypothesis
}

// destructure materialises the DeclaredType (and, when the range is
// fully readable, ContentType) hypothesis for (rng, tid), dispatches on
// the type's structural kind to recurse into children, and returns the
// canonical declared and content hypotheses (content may be nil) for the
// caller to link into its own decomposition/pointer factors. Revisiting
// an already-destructured (rng, tid) pair is a no-op beyond the lookup:
// this is what terminates the walk on cyclic pointer graphs.
func (w *walker) destructure(rng fgraph.AddressRange, tid typesource.TypeID) (declared, content *fgraph.Hypothesis) {
	h := fgraph.NewHypothesis(fgraph.DeclaredType, rng, fgraph.TypeID(tid))
	canonical, isNew := w.builder.AddHypothesis(h)
	if !isNew {
		return canonical, w.contentOf[canonical]
	}
	w.stats.HypothesesCreated++

	var contentHyp *fgraph.Hypothesis
	if n, ok := w.proc.ReadBytes(rng); ok && n == rng.Size {
		ch, contentIsNew := w.builder.AddHypothesis(fgraph.NewHypothesis(fgraph.ContentType, rng, fgraph.TypeID(tid)))
		contentHyp = ch
		if contentIsNew {
			w.stats.HypothesesCreated++
		}
		if _, factorIsNew := w.builder.AddFactor(fgraph.DeclarationContent,
			[]*fgraph.Hypothesis{canonical, contentHyp}, w.cfg.weights.DeclarationContentWeights()); factorIsNew {
			w.stats.FactorsCreated++
		}
	}
	w.contentOf[canonical] = contentHyp

	typ, known := w.repo.GetType(tid)
	if !known {
		w.skip("unknown type id", rng, tid)
		return canonical, contentHyp
	}

	switch {
	case isArray(typ):
		w.destructureArray(typ, canonical, contentHyp, rng)
	case isRecord(typ):
		w.destructureRecord(typ, canonical, contentHyp, rng)
	case isPointer(typ):
		w.destructurePointer(typ, canonical, contentHyp, rng)
	}

	return canonical, contentHyp
}

func isArray(t typesource.Type) bool   { _, ok := t.AsArray(); return ok }
func isRecord(t typesource.Type) bool  { _, ok := t.AsRecord(); return ok }
func isPointer(t typesource.Type) bool { _, ok := t.AsPointer(); return ok }

func (w *walker) destructureArray(typ typesource.Type, parentDeclared, parentContent *fgraph.Hypothesis, rng fgraph.AddressRange) {
	arr, _ := typ.AsArray()
	elemTID := arr.ElementType()
	elemType, known := w.repo.GetType(elemTID)
	if !known {
		w.skip("array element type unknown", rng, elemTID)
		return
	}
	elemSize := elemType.Size()
	if elemSize == 0 || rng.Size%elemSize != 0 {
		w.skip("array size not an exact multiple of element size", rng, elemTID)
		return
	}

	n := rng.Size / elemSize
	for i := uint64(0); i < n; i++ {
		childRng := fgraph.AddressRange{Start: rng.Start + i*elemSize, Size: elemSize}
		childDeclared, childContent := w.destructure(childRng, elemTID)
		w.linkDecomposition(parentDeclared, childDeclared, parentContent, childContent)
	}
}

func (w *walker) destructureRecord(typ typesource.Type, parentDeclared, parentContent *fgraph.Hypothesis, rng fgraph.AddressRange) {
	rec, _ := typ.AsRecord()
	for i := 0; i < rec.FieldCount(); i++ {
		field, ok := rec.Field(i)
		if !ok {
			w.skip("record field enumeration failed", rng, typ.ID())
			continue
		}
		if field.Kind == typesource.FieldVTable {
			continue
		}
		fieldType, known := w.repo.GetType(field.Type)
		if !known {
			w.skip("record field type unknown", rng, field.Type)
			continue
		}
		childRng := fgraph.AddressRange{Start: rng.Start + field.Offset, Size: fieldType.Size()}
		childDeclared, childContent := w.destructure(childRng, field.Type)
		w.linkDecomposition(parentDeclared, childDeclared, parentContent, childContent)
	}
}

func (w *walker) destructurePointer(typ typesource.Type, parentDeclared, parentContent *fgraph.Hypothesis, rng fgraph.AddressRange) {
	ptr, _ := typ.AsPointer()
	targetTID := ptr.TargetType()
	target, ok := w.proc.Dereference(rng.Start, targetTID)
	if !ok {
		w.skip("pointer dereference failed", rng, targetTID)
		return
	}
	targetDeclared, _ := w.destructure(target.Range, target.TypeID)

	if parentContent == nil {
		w.skip("pointer factor needs a content hypothesis, range not fully readable", rng, typ.ID())
		return
	}
	if _, isNew := w.builder.AddFactor(fgraph.Pointer,
		[]*fgraph.Hypothesis{parentDeclared, parentContent, targetDeclared}, w.cfg.weights.PointerWeights()); isNew {
		w.stats.FactorsCreated++
	}
}

// linkDecomposition creates a Decomposition factor over the parent/child
// declared types, and, when both ends also have a content hypothesis,
// an analogous factor over the content types.
func (w *walker) linkDecomposition(parentDeclared, childDeclared, parentContent, childContent *fgraph.Hypothesis) {
	if _, isNew := w.builder.AddFactor(fgraph.Decomposition,
		[]*fgraph.Hypothesis{parentDeclared, childDeclared}, w.cfg.weights.DecompositionWeights()); isNew {
		w.stats.FactorsCreated++
	}
	if parentContent == nil || childContent == nil {
		return
	}
	if _, isNew := w.builder.AddFactor(fgraph.Decomposition,
		[]*fgraph.Hypothesis{parentContent, childContent}, w.cfg.weights.DecompositionWeights()); isNew {
		w.stats.FactorsCreated++
	}
}

func (w *walker) skip(reason string, rng fgraph.AddressRange, tid typesource.TypeID) {
	w.stats.SubtreesSkipped++
	w.cfg.logger.Debug("destructure: sub-tree skipped",
		zap.String("reason", reason), zap.Stringer("range", rng), zap.Uint64("type_id", uint64(tid)))
}
