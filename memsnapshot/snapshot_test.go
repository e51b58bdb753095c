package memsnapshot_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/nzeh/probmem/fgraph"
	"github.com/nzeh/probmem/memsnapshot"
	"github.com/nzeh/probmem/typesource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docJSON = `{
  "types": [
    {"id": 1, "kind": "primitive", "size": 4},
    {"id": 2, "kind": "array", "elem_type": 1, "size": 8}
  ],
  "blocks": [ {"address": 4096, "type_id": 2} ],
  "memory": [ {"address": 4096, "data_base64": "AAAAAAAAAAA="} ]
}`

func TestLoadAndBuild(t *testing.T) {
	t.Parallel()

	doc, err := memsnapshot.Load(strings.NewReader(docJSON))
	require.NoError(t, err)

	repo, state, err := memsnapshot.Build(doc)
	require.NoError(t, err)

	blocks, ok := state.TypedBlocks()
	require.True(t, ok)
	require.Len(t, blocks, 1)
	assert.Equal(t, uint64(4096), blocks[0].Range.Start)
	assert.Equal(t, uint64(8), blocks[0].Range.Size)

	typ, ok := repo.GetType(typesource.TypeID(2))
	require.True(t, ok)
	arr, ok := typ.AsArray()
	require.True(t, ok)
	assert.Equal(t, typesource.TypeID(1), arr.ElementType())

	n, ok := state.ReadBytes(fgraph.AddressRange{Start: 4096, Size: 8})
	assert.True(t, ok)
	assert.Equal(t, uint64(8), n)

	_, ok = state.ReadBytes(fgraph.AddressRange{Start: 4096, Size: 16})
	assert.False(t, ok)
}

func TestBuild_UnknownBlockType(t *testing.T) {
	t.Parallel()

	doc, err := memsnapshot.Load(strings.NewReader(`{"blocks":[{"address":0,"type_id":99}]}`))
	require.NoError(t, err)

	_, _, err = memsnapshot.Build(doc)
	assert.Error(t, err)
}

func TestDereference(t *testing.T) {
	t.Parallel()

	// 8-byte pointer at 0x2000 pointing to 0x1000, where a 4-byte
	// primitive type 1 lives.
	target := []byte{0, 0x10, 0, 0, 0, 0, 0, 0} // little-endian 0x1000
	doc := &memsnapshot.Document{
		Types: []memsnapshot.TypeDecl{
			{ID: 1, Kind: "primitive", Size: 4},
			{ID: 2, Kind: "pointer", Size: 8, TargetType: 1},
		},
		Blocks: []memsnapshot.BlockDecl{{Address: 0x2000, TypeID: 2}},
		Memory: []memsnapshot.MemoryDecl{
			{Address: 0x2000, DataBase64: base64.StdEncoding.EncodeToString(target)},
		},
	}

	repo, state, err := memsnapshot.Build(doc)
	require.NoError(t, err)

	blk, ok := state.Dereference(0x2000, typesource.TypeID(1))
	require.True(t, ok)
	assert.Equal(t, uint64(0x1000), blk.Range.Start)
	assert.Equal(t, uint64(4), blk.Range.Size)

	_, ok = repo.GetType(typesource.TypeID(2))
	assert.True(t, ok)
}

func TestDereference_NullPointer(t *testing.T) {
	t.Parallel()

	doc := &memsnapshot.Document{
		Types: []memsnapshot.TypeDecl{
			{ID: 1, Kind: "primitive", Size: 4},
		},
		Memory: []memsnapshot.MemoryDecl{
			{Address: 0x3000, DataBase64: base64.StdEncoding.EncodeToString(make([]byte, 8))},
		},
	}

	_, state, err := memsnapshot.Build(doc)
	require.NoError(t, err)

	_, ok := state.Dereference(0x3000, typesource.TypeID(1))
	assert.False(t, ok)
}
