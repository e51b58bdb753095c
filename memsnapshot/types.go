package memsnapshot

// Document is the JSON wire shape of one process snapshot: a type
// table, the seed typed blocks, and the raw bytes available for each
// memory region. See the package documentation for an example document.
type Document struct {
	Types  []TypeDecl   `json:"types"`
	Blocks []BlockDecl  `json:"blocks"`
	Memory []MemoryDecl `json:"memory"`
}

// TypeDecl declares one entry of the type table. Kind selects which of
// ElemType, Fields, or TargetType applies; a "primitive" type uses none
// of them.
type TypeDecl struct {
	ID         uint64      `json:"id"`
	Kind       string      `json:"kind"` // "primitive" | "array" | "record" | "pointer"
	Size       uint64      `json:"size"`
	ElemType   uint64      `json:"elem_type,omitempty"`
	TargetType uint64      `json:"target_type,omitempty"`
	Fields     []FieldDecl `json:"fields,omitempty"`
}

// FieldDecl is one record field in the wire format.
type FieldDecl struct {
	Name     string `json:"name"`
	Type     uint64 `json:"type"`
	Offset   uint64 `json:"offset"`
	IsVTable bool   `json:"is_vtable,omitempty"`
}

// BlockDecl is one top-level typed block: an address declared to hold a
// value of TypeID. Size is derived from the type table at load time.
type BlockDecl struct {
	Address uint64 `json:"address"`
	TypeID  uint64 `json:"type_id"`
}

// MemoryDecl is one contiguous range of bytes known to be present in the
// snapshot, base64-encoded over the wire.
type MemoryDecl struct {
	Address    uint64 `json:"address"`
	DataBase64 string `json:"data_base64"`
}
