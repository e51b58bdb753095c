package destructure

// WeightPolicy supplies the weight tables destructure attaches to each
// factor kind it creates. The shape (table length 2^degree) and
// neighbour ordering are contractual; the values are an open calibration
// question, so this package accepts a pluggable policy instead of
// hard-coding one table.
type WeightPolicy interface {
	// DeclarationContentWeights returns the length-4 table for a
	// DeclarationContent factor over {declared, content}.
	DeclarationContentWeights() []float64
	// DecompositionWeights returns the length-4 table for a
	// Decomposition factor over {parent, child}.
	DecompositionWeights() []float64
	// PointerWeights returns the length-8 table for a Pointer factor
	// over {parent.declared, parent.content, target.declared}.
	PointerWeights() []float64
}

// UniformWeights is the zero-value policy: every table is filled with
// zeros. All-zero tables starve every factor message to (0,0), so
// inference over them never converges and marginals stay undefined —
// the honest answer until someone supplies calibrated weights. It is
// the default.
var UniformWeights WeightPolicy = uniformWeights{}

type uniformWeights struct{}

func (uniformWeights) DeclarationContentWeights() []float64 { return make([]float64, 4) }
func (uniformWeights) DecompositionWeights() []float64       { return make([]float64, 4) }
func (uniformWeights) PointerWeights() []float64             { return make([]float64, 8) }

// ForcingWeights is a documented, explicitly uncalibrated alternative to
// UniformWeights: it weights the "both true" / "both match" assignments
// higher than disagreement, so memsnapshot-driven demo runs produce
// non-degenerate marginals instead of the all-zero collapse UniformWeights
// gives every message. These values are not a calibrated model of any
// real type-confidence distribution — they exist only so a demo run has
// something to show.
var ForcingWeights WeightPolicy = forcingWeights{}

type forcingWeights struct{}

// agree/disagree index layout for a degree-2 table, bit0=first neighbour,
// bit1=second neighbour: index 0=(F,F) 1=(T,F) 2=(F,T) 3=(T,T).
func (forcingWeights) DeclarationContentWeights() []float64 {
	return []float64{1, 0.2, 0.2, 4}
}

func (forcingWeights) DecompositionWeights() []float64 {
	return []float64{1, 0.2, 0.2, 4}
}

// PointerWeights favors the assignment where the parent's declared and
// content hypotheses and the target's declared hypothesis are all true
// (index 7 = 0b111) over any partial match.
func (forcingWeights) PointerWeights() []float64 {
	w := make([]float64, 8)
	for i := range w {
		w[i] = 0.3
	}
	w[7] = 5
	w[0] = 1
	return w
}
