package memsnapshot

import "github.com/nzeh/probmem/typesource"

// Repository is a typesource.TypeRepository backed by a Document's type
// table, keyed by TypeDecl.ID.
type Repository struct {
	types map[typesource.TypeID]*declType
}

// NewRepository indexes doc's type table by id. A later entry with the
// same id silently overwrites an earlier one; last declaration wins.
func NewRepository(doc *Document) *Repository {
	r := &Repository{types: make(map[typesource.TypeID]*declType, len(doc.Types))}
	for i := range doc.Types {
		decl := &doc.Types[i]
		r.types[typesource.TypeID(decl.ID)] = &declType{decl: decl}
	}

	return r
}

// GetType implements typesource.TypeRepository.
func (r *Repository) GetType(id typesource.TypeID) (typesource.Type, bool) {
	t, ok := r.types[id]
	if !ok {
		return nil, false
	}

	return t, true
}

// declType adapts one TypeDecl to typesource.Type (and, depending on
// Kind, ArrayType/RecordType/PointerType).
type declType struct {
	decl *TypeDecl
}

func (t *declType) ID() typesource.TypeID { return typesource.TypeID(t.decl.ID) }
func (t *declType) Size() uint64          { return t.decl.Size }

func (t *declType) AsArray() (typesource.ArrayType, bool) {
	if t.decl.Kind != "array" {
		return nil, false
	}

	return arrayType{t.decl}, true
}

func (t *declType) AsRecord() (typesource.RecordType, bool) {
	if t.decl.Kind != "record" {
		return nil, false
	}

	return recordType{t.decl}, true
}

func (t *declType) AsPointer() (typesource.PointerType, bool) {
	if t.decl.Kind != "pointer" {
		return nil, false
	}

	return pointerType{t.decl}, true
}

type arrayType struct{ decl *TypeDecl }

func (a arrayType) ElementType() typesource.TypeID { return typesource.TypeID(a.decl.ElemType) }

type recordType struct{ decl *TypeDecl }

func (r recordType) FieldCount() int { return len(r.decl.Fields) }

func (r recordType) Field(i int) (typesource.RecordField, bool) {
	if i < 0 || i >= len(r.decl.Fields) {
		return typesource.RecordField{}, false
	}
	f := r.decl.Fields[i]
	kind := typesource.FieldOrdinary
	if f.IsVTable {
		kind = typesource.FieldVTable
	}

	return typesource.RecordField{Kind: kind, Type: typesource.TypeID(f.Type), Offset: f.Offset}, true
}

type pointerType struct{ decl *TypeDecl }

func (p pointerType) TargetType() typesource.TypeID { return typesource.TypeID(p.decl.TargetType) }
