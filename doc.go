// Package cachetrans is your in-memory playground for cache-conscious
// matrix transposition — blocked kernels, a direct-mapped cache simulator,
// and a miss-counting evaluation harness, all in pure Go.
//
// 🚀 What is cachetrans?
//
//	A small, deterministic library that brings together:
//		• Dense int32 matrices: flat row-major storage with an optional access probe
//		• Transpose kernels: a baseline scan plus blocked variants tuned for a
//		  1 KiB direct-mapped cache with 32-byte lines
//		• A shape dispatcher: exact-match routing for 32×32, 32×64 and 64×64
//		  with a parametric fallback for every other shape
//		• A cache simulator: parametric (sets, associativity, line size) with
//		  hit / miss / eviction accounting
//		• An evaluation harness: register candidates, replay them against a
//		  cold cache, compare miss counts
//
// ✨ Why choose cachetrans?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions of their inputs, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Honest numbers – every miss count comes from a replayable simulation
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — dense row-major int32 matrices + the Probe access hook
//	trans/    — transpose kernels, the shape dispatcher, the oracle, registration
//	cachesim/ — the set-associative cache model behind all miss counting
//	harness/  — candidate registry and cold-cache evaluation driver
//
// Quick ASCII example:
//
//	    A (N×M)            B (M×N)
//	    ┌ 1 2 ┐            ┌ 1 3 ┐
//	    └ 3 4 ┘     ⇒      └ 2 4 ┘
//
//	every cell obeys B[j][i] == A[i][j]; the interesting part is how few
//	cache lines get evicted along the way.
//
// Dive into the per-package docs for the cache geometry, the blocking
// strategies, and the carry trick that makes 64×64 affordable.
//
//	go get github.com/katalvlaran/cachetrans
package cachetrans
