// Package cachesim_test verifies geometry validation and hit/miss/eviction
// accounting on hand-computed address sequences.
package cachesim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cachetrans/cachesim"
)

// TestDefaultGeometry pins the lab cache: 1 KiB direct-mapped, 32 B lines.
func TestDefaultGeometry(t *testing.T) {
	g := cachesim.DefaultGeometry()
	assert.Equal(t, 32, g.Sets(), "32 sets")
	assert.Equal(t, 1, g.Assoc, "direct-mapped")
	assert.Equal(t, 32, g.BlockSize(), "32-byte lines")
	assert.Equal(t, 1024, g.Size(), "1 KiB total")
}

// TestNew_BadGeometry verifies out-of-range fields are rejected.
func TestNew_BadGeometry(t *testing.T) {
	cases := []struct {
		name string
		g    cachesim.Geometry
	}{
		{"negative set bits", cachesim.Geometry{SetBits: -1, Assoc: 1, BlockBits: 5}},
		{"negative block bits", cachesim.Geometry{SetBits: 5, Assoc: 1, BlockBits: -2}},
		{"zero associativity", cachesim.Geometry{SetBits: 5, Assoc: 0, BlockBits: 5}},
		{"oversized index", cachesim.Geometry{SetBits: 40, Assoc: 1, BlockBits: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cachesim.New(tc.g)
			assert.ErrorIs(t, err, cachesim.ErrBadGeometry, "geometry %+v must error", tc.g)
		})
	}
}

// TestAccess_DirectMapped walks the canonical direct-mapped scenario:
// cold miss, same-line hit, same-set conflict, thrash on return.
func TestAccess_DirectMapped(t *testing.T) {
	c, err := cachesim.New(cachesim.DefaultGeometry())
	require.NoError(t, err)

	assert.Equal(t, cachesim.Miss, c.Access(0), "cold cache: first touch misses")
	assert.Equal(t, cachesim.Hit, c.Access(4), "same 32-byte line: hit")
	assert.Equal(t, cachesim.Hit, c.Access(31), "last byte of the line: hit")
	assert.Equal(t, cachesim.MissEviction, c.Access(1024), "1024 apart: same set, evicts")
	assert.Equal(t, cachesim.MissEviction, c.Access(0), "direct-mapped thrash on return")
	assert.Equal(t, cachesim.Miss, c.Access(32), "next line: plain cold miss")

	st := c.Stats()
	assert.Equal(t, 2, st.Hits, "hits")
	assert.Equal(t, 4, st.Misses, "misses include evicting misses")
	assert.Equal(t, 2, st.Evictions, "evictions")
}

// TestAccess_SetIndexBits verifies the set index is bits [9:5] of the
// address in the default geometry.
func TestAccess_SetIndexBits(t *testing.T) {
	c, err := cachesim.New(cachesim.DefaultGeometry())
	require.NoError(t, err)

	require.Equal(t, cachesim.Miss, c.Access(0), "set 0 cold")
	assert.Equal(t, cachesim.Miss, c.Access(512), "set 16 is distinct from set 0")
	assert.Equal(t, cachesim.Hit, c.Access(16), "set 0 still resident")
}

// TestAccess_LRUWithinSet verifies associative replacement order with a
// 2-way geometry: aliasing lines coexist, then the least recent one goes.
func TestAccess_LRUWithinSet(t *testing.T) {
	g := cachesim.Geometry{SetBits: 5, Assoc: 2, BlockBits: 5}
	c, err := cachesim.New(g)
	require.NoError(t, err)
	assert.Equal(t, 2048, g.Size(), "2-way doubles capacity")

	require.Equal(t, cachesim.Miss, c.Access(0), "way 0 fill")
	require.Equal(t, cachesim.Miss, c.Access(1024), "way 1 fill, no eviction at 2 ways")
	assert.Equal(t, cachesim.Hit, c.Access(0), "both aliases resident")
	assert.Equal(t, cachesim.MissEviction, c.Access(2048), "third alias evicts LRU (1024)")
	assert.Equal(t, cachesim.Hit, c.Access(0), "0 was MRU, survives")
	assert.Equal(t, cachesim.MissEviction, c.Access(1024), "1024 was the victim")
}

// TestLoadStore_FunnelIntoAccess verifies the Probe entry points account
// exactly like Access (write-allocate).
func TestLoadStore_FunnelIntoAccess(t *testing.T) {
	c, err := cachesim.New(cachesim.DefaultGeometry())
	require.NoError(t, err)

	c.Store(64) // allocate on write
	c.Load(68)  // same line
	st := c.Stats()
	assert.Equal(t, 1, st.Misses, "store allocated the line")
	assert.Equal(t, 1, st.Hits, "load hit the allocated line")
}

// TestReset verifies Reset restores the cold state but keeps the geometry.
func TestReset(t *testing.T) {
	c, err := cachesim.New(cachesim.DefaultGeometry())
	require.NoError(t, err)

	c.Access(0)
	c.Access(0)
	c.Reset()

	assert.Equal(t, cachesim.Stats{}, c.Stats(), "counters cleared")
	assert.Equal(t, cachesim.Miss, c.Access(0), "lines invalidated: cold again")
	assert.Equal(t, cachesim.DefaultGeometry(), c.Geometry(), "geometry preserved")
}

// TestEventString pins the diagnostic vocabulary.
func TestEventString(t *testing.T) {
	assert.Equal(t, "hit", cachesim.Hit.String())
	assert.Equal(t, "miss", cachesim.Miss.String())
	assert.Equal(t, "miss eviction", cachesim.MissEviction.String())
}
