package typesource

import "github.com/nzeh/probmem/fgraph"

// TypeID identifies a type within a TypeRepository. It is distinct from
// fgraph.TypeID only in name; destructure converts between the two at
// the package boundary so fgraph never imports typesource.
type TypeID uint64

// FieldKind distinguishes ordinary record fields from vtable pointers.
// Vtable fields are skipped during record decomposition — they describe
// the object's dynamic type, not its declared layout, and have no
// meaningful hypothesis of their own.
type FieldKind int

const (
	// FieldOrdinary is a normal data member.
	FieldOrdinary FieldKind = iota
	// FieldVTable marks a field holding a virtual-dispatch table pointer.
	FieldVTable
)

// TypeRepository resolves type ids to their structural description.
type TypeRepository interface {
	GetType(id TypeID) (Type, bool)
}

// Type is the structural kind of one type in a TypeRepository. Exactly
// one of AsArray, AsRecord, AsPointer succeeds for a composite type; all
// three fail for a primitive (leaf) type.
type Type interface {
	ID() TypeID
	Size() uint64
	AsArray() (ArrayType, bool)
	AsRecord() (RecordType, bool)
	AsPointer() (PointerType, bool)
}

// ArrayType describes a fixed-size contiguous sequence of one element
// type. The element count is derived by destructure as Size()/elem.Size().
type ArrayType interface {
	ElementType() TypeID
}

// RecordType describes a user-defined type as an ordered list of fields.
type RecordType interface {
	FieldCount() int
	Field(i int) (RecordField, bool)
}

// RecordField is one member of a RecordType.
type RecordField struct {
	Kind   FieldKind
	Type   TypeID
	Offset uint64
}

// PointerType describes a typed pointer and the type it targets.
type PointerType interface {
	TargetType() TypeID
}

// TypedBlock anchors one destructuring seed: a byte range in process
// memory declared (by whatever produced the snapshot) to hold a value of
// TypeID.
type TypedBlock struct {
	Range  fgraph.AddressRange
	TypeID TypeID
}

// ProcessState exposes the parts of a captured process image destructure
// needs: the set of top-level typed blocks to seed from, a byte-coverage
// query used to decide whether a ContentType hypothesis can be created,
// and pointer dereferencing.
type ProcessState interface {
	// TypedBlocks returns every top-level typed block known for this
	// process. ok is false when the snapshot carries no typed-block
	// layer at all (destructure.ErrNoTypedBlockLayer).
	TypedBlocks() ([]TypedBlock, bool)

	// ReadBytes reports how many of r's bytes are actually present in
	// the snapshot. ok is true only when the entire range is covered;
	// a partially covered range still reports ok=false, matching the
	// "readable" predicate in the destructuring walk.
	ReadBytes(r fgraph.AddressRange) (n uint64, ok bool)

	// Dereference follows a pointer value stored at addr, interpreting
	// the pointee as pointeeType. ok is false when the pointer is null,
	// dangling, or otherwise unresolvable — destructure treats that as a
	// silently skipped sub-tree, never an error.
	Dereference(addr uint64, pointeeType TypeID) (TypedBlock, bool)
}
