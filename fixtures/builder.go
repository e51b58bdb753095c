package fixtures

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/nzeh/probmem/memsnapshot"
	"github.com/nzeh/probmem/typesource"
)

// Constructor applies a deterministic mutation to a Builder's
// accumulating document. Constructors must not read global state and
// must not reorder prior mutations: the same constructor list in the
// same order always yields an identical document.
type Constructor func(b *Builder)

// Builder accumulates a memsnapshot.Document one Constructor at a time.
type Builder struct {
	doc memsnapshot.Document
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Compose creates a Builder and applies every Constructor to it in
// order.
func Compose(cons ...Constructor) *Builder {
	b := New()
	for _, c := range cons {
		c(b)
	}

	return b
}

// Primitive adds a leaf type of the given size.
func (b *Builder) Primitive(id, size uint64) *Builder {
	b.doc.Types = append(b.doc.Types, memsnapshot.TypeDecl{ID: id, Kind: "primitive", Size: size})

	return b
}

// Array adds an array type of elemCount elements of elemType, sized
// elemCount*elemSize.
func (b *Builder) Array(id, elemType, elemCount, elemSize uint64) *Builder {
	b.doc.Types = append(b.doc.Types, memsnapshot.TypeDecl{
		ID: id, Kind: "array", ElemType: elemType, Size: elemCount * elemSize,
	})

	return b
}

// Record adds a record type over fields, sized size.
func (b *Builder) Record(id, size uint64, fields ...memsnapshot.FieldDecl) *Builder {
	b.doc.Types = append(b.doc.Types, memsnapshot.TypeDecl{
		ID: id, Kind: "record", Size: size, Fields: fields,
	})

	return b
}

// Pointer adds a pointer type targeting targetType.
func (b *Builder) Pointer(id, targetType uint64) *Builder {
	b.doc.Types = append(b.doc.Types, memsnapshot.TypeDecl{
		ID: id, Kind: "pointer", Size: 8, TargetType: targetType,
	})

	return b
}

// Block seeds a top-level typed block at addr holding typeID.
func (b *Builder) Block(addr, typeID uint64) *Builder {
	b.doc.Blocks = append(b.doc.Blocks, memsnapshot.BlockDecl{Address: addr, TypeID: typeID})

	return b
}

// Bytes declares size fully-readable, zeroed bytes at addr. Use
// PointerBytes to encode a non-null pointer value instead.
func (b *Builder) Bytes(addr, size uint64) *Builder {
	b.doc.Memory = append(b.doc.Memory, memsnapshot.MemoryDecl{
		Address: addr, DataBase64: base64.StdEncoding.EncodeToString(make([]byte, size)),
	})

	return b
}

// PointerBytes declares 8 fully-readable bytes at addr encoding, in
// little-endian, a pointer value pointing at target.
func (b *Builder) PointerBytes(addr, target uint64) *Builder {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, target)
	b.doc.Memory = append(b.doc.Memory, memsnapshot.MemoryDecl{
		Address: addr, DataBase64: base64.StdEncoding.EncodeToString(buf),
	})

	return b
}

// Build finalizes the accumulated document into a TypeRepository and
// ProcessState pair ready for destructure.Run or analysis.RunAnalysis.
func (b *Builder) Build() (typesource.TypeRepository, typesource.ProcessState, error) {
	return memsnapshot.Build(&b.doc)
}
