// Package cachesim models the cache that the transpose kernels are tuned
// for: by default 1 KiB, direct-mapped, 32-byte lines (32 sets of one way,
// 8 int32 elements per line).
//
// What:
//
//   - Geometry describes a cache as (SetBits, Assoc, BlockBits); the
//     simulator is parametric like the classic (s, E, b) model, with LRU
//     replacement inside a set (moot at Assoc 1).
//   - Cache replays a sequence of byte addresses via Access and accounts
//     every one as a hit, a miss, or a miss with eviction.
//   - Cache satisfies the matrix.Probe interface (Load/Store both funnel
//     into Access), so an observed matrix feeds the simulator directly.
//
// Why:
//
//   - Conflict-miss structure is the whole story of blocked transposition;
//     a replayable simulator turns "this blocking is cache-friendly" into
//     an assertable number.
//   - Two addresses alias in the default geometry iff they agree modulo
//     1024: same set index over 5 set bits above the 5 offset bits.
//
// Complexity:
//
//   - Access: O(Assoc) per address (O(1) for the direct-mapped default).
//   - Memory: O(Sets × Assoc) lines.
//
// Errors:
//
//   - ErrBadGeometry: a Geometry field is outside its valid range.
package cachesim
