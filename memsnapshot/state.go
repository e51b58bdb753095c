package memsnapshot

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/typesource"
)

// pointerSize is the width, in bytes, of an encoded pointer value in a
// snapshot's memory regions. Snapshots in this reference implementation
// are always 64-bit.
const pointerSize = 8

// region is one contiguous, fully-present byte range decoded from a
// MemoryDecl.
type region struct {
	start uint64
	data  []byte
}

func (r region) end() uint64 { return r.start + uint64(len(r.data)) }

// ProcessState is a typesource.ProcessState backed by a Document's seed
// blocks and memory regions.
type ProcessState struct {
	blocks  []typesource.TypedBlock
	regions []region
	repo    *Repository
}

// NewProcessState decodes doc's memory regions and resolves its seed
// blocks' sizes against repo. It returns an error if a seed block
// references a type repo does not know, since a malformed fixture is a
// programmer error here, not a runtime condition the core needs to
// tolerate. Record field types are not checked here.
func NewProcessState(doc *Document, repo *Repository) (*ProcessState, error) {
	regions := make([]region, 0, len(doc.Memory))
	for _, m := range doc.Memory {
		data, err := base64.StdEncoding.DecodeString(m.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("memsnapshot: memory region at 0x%x: %w", m.Address, err)
		}
		regions = append(regions, region{start: m.Address, data: data})
	}

	blocks := make([]typesource.TypedBlock, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		tid := typesource.TypeID(b.TypeID)
		typ, ok := repo.GetType(tid)
		if !ok {
			return nil, fmt.Errorf("memsnapshot: block at 0x%x: %w: %d", b.Address, errUnknownType, tid)
		}
		blocks = append(blocks, typesource.TypedBlock{
			Range:  fgraph.AddressRange{Start: b.Address, Size: typ.Size()},
			TypeID: tid,
		})
	}

	return &ProcessState{blocks: blocks, regions: regions, repo: repo}, nil
}

// TypedBlocks implements typesource.ProcessState.
func (s *ProcessState) TypedBlocks() ([]typesource.TypedBlock, bool) {
	return s.blocks, true
}

// findRegion returns the region fully containing r, if any.
func (s *ProcessState) findRegion(r fgraph.AddressRange) (region, bool) {
	for _, reg := range s.regions {
		if r.Start >= reg.start && r.End() <= reg.end() {
			return reg, true
		}
	}

	return region{}, false
}

// ReadBytes implements typesource.ProcessState: n is the range's full
// size and ok is true only when some region fully contains r; a range
// spanning a region boundary, or only partially covered, reports the
// covered prefix and ok=false.
func (s *ProcessState) ReadBytes(r fgraph.AddressRange) (uint64, bool) {
	if _, ok := s.findRegion(r); ok {
		return r.Size, true
	}

	var covered uint64
	for _, reg := range s.regions {
		if r.Start >= reg.start && r.Start < reg.end() {
			covered = reg.end() - r.Start
			if covered > r.Size {
				covered = r.Size
			}
			break
		}
	}

	return covered, false
}

// Dereference implements typesource.ProcessState: it reads a
// little-endian pointerSize-byte value at addr, treats zero as a null
// (unresolvable) pointer, and otherwise resolves a TypedBlock at the
// decoded target address sized from pointeeType. It does not require
// the target range itself to be readable — that is decided separately
// when the destructurer recurses into it.
func (s *ProcessState) Dereference(addr uint64, pointeeType typesource.TypeID) (typesource.TypedBlock, bool) {
	reg, ok := s.findRegion(fgraph.AddressRange{Start: addr, Size: pointerSize})
	if !ok {
		return typesource.TypedBlock{}, false
	}

	off := addr - reg.start
	target := binary.LittleEndian.Uint64(reg.data[off : off+pointerSize])
	if target == 0 {
		return typesource.TypedBlock{}, false
	}

	typ, ok := s.repo.GetType(pointeeType)
	if !ok {
		return typesource.TypedBlock{}, false
	}

	return typesource.TypedBlock{
		Range:  fgraph.AddressRange{Start: target, Size: typ.Size()},
		TypeID: pointeeType,
	}, true
}
