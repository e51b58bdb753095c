package analysis_test

import (
	"testing"

	"github.com/nzeh/probmem/analysis"
	"github.com/nzeh/probmem/destructure"
	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/typesource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeType struct {
	id   typesource.TypeID
	size uint64
}

func (t *fakeType) ID() typesource.TypeID                     { return t.id }
func (t *fakeType) Size() uint64                              { return t.size }
func (t *fakeType) AsArray() (typesource.ArrayType, bool)     { return nil, false }
func (t *fakeType) AsRecord() (typesource.RecordType, bool)   { return nil, false }
func (t *fakeType) AsPointer() (typesource.PointerType, bool) { return nil, false }

type fakeRepo struct{ types map[typesource.TypeID]*fakeType }

func (r *fakeRepo) GetType(id typesource.TypeID) (typesource.Type, bool) {
	t, ok := r.types[id]
	if !ok {
		return nil, false
	}
	return t, true
}

type fakeProc struct {
	blocks []typesource.TypedBlock
}

func (p *fakeProc) TypedBlocks() ([]typesource.TypedBlock, bool)   { return p.blocks, true }
func (p *fakeProc) ReadBytes(r fgraph.AddressRange) (uint64, bool) { return r.Size, true }
func (p *fakeProc) Dereference(uint64, typesource.TypeID) (typesource.TypedBlock, bool) {
	return typesource.TypedBlock{}, false
}

func TestRunAnalysis_EndToEnd(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{types: map[typesource.TypeID]*fakeType{1: {id: 1, size: 4}}}
	proc := &fakeProc{blocks: []typesource.TypedBlock{
		{Range: fgraph.AddressRange{Start: 0x1000, Size: 4}, TypeID: 1},
	}}

	res, err := analysis.RunAnalysis(repo, proc, analysis.WithWeightPolicy(destructure.ForcingWeights))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEqual(t, [16]byte{}, [16]byte(res.RunID))
	assert.True(t, res.BeliefProp.Converged)
	assert.Equal(t, 1, res.Destructure.BlocksSeen)
	assert.Equal(t, 3, res.Graph.NumVertices())

	for _, v := range res.Graph.Vertices() {
		h, ok := v.(*fgraph.Hypothesis)
		if !ok {
			continue
		}
		p, defined := h.Marginal()
		require.True(t, defined)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestRunAnalysis_NoTypedBlockLayer(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{types: map[typesource.TypeID]*fakeType{}}
	proc := &emptyProc{}

	_, err := analysis.RunAnalysis(repo, proc)
	assert.ErrorIs(t, err, destructure.ErrNoTypedBlockLayer)
}

type emptyProc struct{}

func (emptyProc) TypedBlocks() ([]typesource.TypedBlock, bool)            { return nil, false }
func (emptyProc) ReadBytes(fgraph.AddressRange) (uint64, bool)            { return 0, false }
func (emptyProc) Dereference(uint64, typesource.TypeID) (typesource.TypedBlock, bool) {
	return typesource.TypedBlock{}, false
}
