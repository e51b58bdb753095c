package fgraph_test

import (
	"testing"

	"github.com/nzeh/probmem/fgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRange_Intersects(t *testing.T) {
	t.Parallel()

	a := fgraph.AddressRange{Start: 0x1000, Size: 8}
	cases := []struct {
		name string
		b    fgraph.AddressRange
		want bool
	}{
		{"identical", fgraph.AddressRange{Start: 0x1000, Size: 8}, true},
		{"overlap-left", fgraph.AddressRange{Start: 0xFFC, Size: 8}, true},
		{"overlap-right", fgraph.AddressRange{Start: 0x1004, Size: 8}, true},
		{"adjacent-before", fgraph.AddressRange{Start: 0xFF8, Size: 8}, false},
		{"adjacent-after", fgraph.AddressRange{Start: 0x1008, Size: 8}, false},
		{"disjoint", fgraph.AddressRange{Start: 0x2000, Size: 4}, false},
		{"zero-size-self", fgraph.AddressRange{Start: 0x1000, Size: 0}, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.want, a.Intersects(c.b))
			require.Equal(t, c.want, c.b.Intersects(a), "Intersects must be symmetric")
		})
	}
}

func TestAddressRange_End(t *testing.T) {
	t.Parallel()
	r := fgraph.AddressRange{Start: 100, Size: 4}
	assert.Equal(t, uint64(104), r.End())
}

func TestAddressRange_Equality(t *testing.T) {
	t.Parallel()
	a := fgraph.AddressRange{Start: 1, Size: 2}
	b := fgraph.AddressRange{Start: 1, Size: 2}
	c := fgraph.AddressRange{Start: 1, Size: 3}
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestHypothesisKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "DeclaredType", fgraph.DeclaredType.String())
	assert.Equal(t, "ContentType", fgraph.ContentType.String())
	assert.Equal(t, "Observation", fgraph.Observation.String())
}

func TestFactorKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Decomposition", fgraph.Decomposition.String())
	assert.Equal(t, "Pointer", fgraph.Pointer.String())
	assert.Equal(t, "Content", fgraph.Content.String())
	assert.Equal(t, "DeclarationContent", fgraph.DeclarationContent.String())
}
