package fixtures

import (
	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/memsnapshot"
	"github.com/nzeh/probmem/typesource"
)

// Canonical end-to-end scenarios shared across the test suites. Each
// returns a ready-to-use (TypeRepository, ProcessState) pair.

// EmptyProcessState has no typed-block layer at all: destructure.Run
// must return destructure.ErrNoTypedBlockLayer.
func EmptyProcessState() (typesource.TypeRepository, typesource.ProcessState) {
	return noTypeRepository{}, noLayerState{}
}

// SinglePrimitiveBlock is one typed block of a 4-byte integer type over
// a fully readable range: destructure.Run should produce exactly one
// declared-type and one content-type hypothesis linked by one
// DeclarationContent factor.
func SinglePrimitiveBlock() (typesource.TypeRepository, typesource.ProcessState, error) {
	return Compose(
		func(b *Builder) { b.Primitive(1, 4) },
		func(b *Builder) { b.Block(0x1000, 1) },
		func(b *Builder) { b.Bytes(0x1000, 4) },
	).Build()
}

// ArrayOfTwoElements is a typed block of int[2] at 0x1000, 8 bytes,
// fully readable: destructure.Run should produce declared/content
// hypotheses for the array and for each of its two elements, linked by
// Decomposition factors.
func ArrayOfTwoElements() (typesource.TypeRepository, typesource.ProcessState, error) {
	return Compose(
		func(b *Builder) { b.Primitive(1, 4) },
		func(b *Builder) { b.Array(2, 1, 2, 4) },
		func(b *Builder) { b.Block(0x1000, 2) },
		func(b *Builder) { b.Bytes(0x1000, 8) },
	).Build()
}

// CyclicPointerRecord is a record whose single field is a pointer to
// the same record type at the same address: destructure.Run must
// terminate with exactly one declared-type hypothesis for the record and
// one Pointer factor whose target is that same hypothesis.
func CyclicPointerRecord() (typesource.TypeRepository, typesource.ProcessState, error) {
	const addr = 0x2000
	return Compose(
		func(b *Builder) { b.Pointer(1, 2) },
		func(b *Builder) {
			b.Record(2, 8, memsnapshot.FieldDecl{Name: "next", Type: 1, Offset: 0})
		},
		func(b *Builder) { b.Block(addr, 2) },
		func(b *Builder) { b.PointerBytes(addr, addr) },
	).Build()
}

// PartialMemory is a typed block over a range where only the first half
// is readable: destructure.Run must create the declared-type hypothesis
// but no content-type hypothesis or DeclarationContent factor.
func PartialMemory() (typesource.TypeRepository, typesource.ProcessState, error) {
	return Compose(
		func(b *Builder) { b.Primitive(1, 8) },
		func(b *Builder) { b.Block(0x3000, 1) },
		func(b *Builder) { b.Bytes(0x3000, 4) }, // only half of the 8-byte range
	).Build()
}

// noTypeRepository is the empty repository paired with noLayerState: it
// is never consulted since TypedBlocks already reports ok=false.
type noTypeRepository struct{}

func (noTypeRepository) GetType(typesource.TypeID) (typesource.Type, bool) { return nil, false }

type noLayerState struct{}

func (noLayerState) TypedBlocks() ([]typesource.TypedBlock, bool) { return nil, false }
func (noLayerState) ReadBytes(fgraph.AddressRange) (uint64, bool) { return 0, false }
func (noLayerState) Dereference(uint64, typesource.TypeID) (typesource.TypedBlock, bool) {
	return typesource.TypedBlock{}, false
}
