// Package cachesim defines the geometry, event, and statistics types for
// the cache simulator of github.com/katalvlaran/cachetrans.
package cachesim

import "errors"

// ErrBadGeometry indicates a Geometry field outside its valid range.
var ErrBadGeometry = errors.New("cachesim: geometry fields out of range")

// Geometry describes a cache in the classic (s, E, b) form:
// 2^SetBits sets, Assoc ways per set, 2^BlockBits bytes per line.
type Geometry struct {
	// SetBits is s: the number of set-index bits (sets = 2^s).
	SetBits int
	// Assoc is E: the number of lines per set (1 = direct-mapped).
	Assoc int
	// BlockBits is b: the number of block-offset bits (line size = 2^b).
	BlockBits int
}

// DefaultGeometry returns the geometry every kernel in trans is tuned for:
// SetBits=5, Assoc=1, BlockBits=5 — 1 KiB direct-mapped, 32-byte lines,
// 8 int32 elements per line.
func DefaultGeometry() Geometry {
	return Geometry{
		SetBits:   5,
		Assoc:     1,
		BlockBits: 5,
	}
}

// Sets returns the number of sets (2^SetBits).
func (g Geometry) Sets() int {
	return 1 << g.SetBits
}

// BlockSize returns the line size in bytes (2^BlockBits).
func (g Geometry) BlockSize() int {
	return 1 << g.BlockBits
}

// Size returns the total capacity in bytes: sets × ways × line size.
func (g Geometry) Size() int {
	return g.Sets() * g.Assoc * g.BlockSize()
}

// validate checks every field range; addresses are ints, so the combined
// index width must leave room for a tag.
func (g Geometry) validate() error {
	if g.SetBits < 0 || g.BlockBits < 0 || g.Assoc < 1 {
		return ErrBadGeometry
	}
	if g.SetBits+g.BlockBits > 48 { // unrealistic index widths are rejected
		return ErrBadGeometry
	}

	return nil
}

// Event classifies the outcome of one Access.
type Event int

const (
	// Hit: the line holding the address was resident.
	Hit Event = iota
	// Miss: the line was not resident and filled an empty way.
	Miss
	// MissEviction: the line was not resident and displaced a resident line.
	MissEviction
)

// String implements fmt.Stringer for Event, mirroring the usual
// hit/miss/eviction vocabulary.
func (e Event) String() string {
	switch e {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case MissEviction:
		return "miss eviction"
	default:
		return "unknown"
	}
}

// Stats accumulates hit/miss/eviction counts across Access calls.
// Every MissEviction also counts as a miss in Misses.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}
