// Package harness is the evaluation driver for transpose candidates: a
// registry of (description, routine) pairs and a replay loop that runs
// each candidate against a cold simulated cache and reports hit, miss and
// eviction counts alongside a correctness verdict.
//
// What:
//
//   - Registry collects candidates in registration order; descriptions are
//     unique, and Lookup finds a candidate by its exact description — the
//     way a grading driver locates "Transpose submission".
//   - Evaluate clones the input, lays A and B out at lab-congruent virtual
//     base addresses (both ≡ 0 mod 1024, B one 256×256 int32 slot after A),
//     attaches one cold cachesim.Cache to both via the matrix Probe hook,
//     runs the candidate, and verifies the result with trans.IsTranspose
//     plus an A-unchanged check.
//   - EvaluateAll replays every registered candidate, each on its own cold
//     cache, in deterministic registration order.
//
// Why:
//
//   - Miss counts only mean something under a fixed layout and a cold
//     start; centralizing both here keeps every comparison apples-to-apples.
//
// Errors:
//
//   - ErrNilFunc, ErrEmptyDesc, ErrDuplicateDesc: Register validation.
//   - ErrUnknownDesc: Lookup found no candidate under that description.
//   - ErrNilMatrix: Evaluate received a nil input matrix.
package harness
