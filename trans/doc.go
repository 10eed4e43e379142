// Package trans implements cache-conscious matrix transposition: for an
// n×m input a and an m×n output b, every kernel computes b[j][i] = a[i][j]
// while minimizing misses on a 1 KiB direct-mapped cache with 32-byte
// lines (8 int32 elements per line).
//
// What:
//
//   - Baseline: the naive row-major scan, the correctness reference and the
//     miss-count upper bound.
//   - Blocked32x32: 8×8 block transpose with eight hoisted scalars.
//   - Blocked32x64: 8-row bands walked in 4-column stripes, alternating the
//     row direction between adjacent stripes.
//   - Blocked64x64: the stripe walk plus a four-scalar carry across each
//     stripe boundary, dodging a conflict-evicted reload.
//   - Submit: the shape dispatcher — exact matches for (32,32), (32,64) and
//     (64,64); every other shape falls through to Blocked64x64, whose bounds
//     are parametric in (m, n) so the fallback stays correct anywhere.
//   - IsTranspose: the correctness oracle.
//   - RegisterAll: publishes the dispatcher and the extra candidates to any
//     Registrar (see the harness package for one).
//
// Why blocking works here:
//
//   - With 4-byte elements, two addresses collide in the cache iff they
//     agree modulo 1024. A 32-column row spans 128 bytes, so rows eight
//     apart alias; a 64-column row spans 256 bytes, so rows FOUR apart
//     alias — which is why 64×64 needs the carry trick and 32×32 does not.
//   - All working state is a handful of scalar locals (at most twelve),
//     small enough to live in registers and never collide with a or b.
//
// Contract (all kernels):
//
//   - a is n rows × m cols, b is m rows × n cols, both caller-allocated and
//     non-overlapping; a is never written; b is fully written before return.
//   - Inputs are trusted: no validation, no errors, no allocation, no I/O.
//
// Complexity: every kernel is O(n·m) time, O(1) extra memory.
package trans
