package harness

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cachetrans/cachesim"
	"github.com/katalvlaran/cachetrans/matrix"
	"github.com/katalvlaran/cachetrans/trans"
)

// ErrNilMatrix indicates Evaluate received a nil input matrix.
var ErrNilMatrix = errors.New("harness: input matrix must be non-nil")

// Virtual layout of the evaluation buffers. The grading driver keeps its
// matrices in two adjacent 256×256 int32 arrays, so both bases are
// congruent to 0 modulo the 1 KiB cache size; conflict behavior depends
// only on that congruence.
const (
	// DefaultBaseA is the virtual byte address of A[0][0].
	DefaultBaseA = 0x0
	// DefaultBaseB is the virtual byte address of B[0][0]: one 256×256
	// int32 slot (262144 bytes) after A, hence also ≡ 0 mod 1024.
	DefaultBaseB = 256 * 256 * matrix.ElemSize
)

// Options tunes one evaluation run.
//
// Fields:
//   - Geometry — the simulated cache; defaults to the 1 KiB direct-mapped
//     lab cache the kernels are tuned for.
//   - BaseA, BaseB — virtual base addresses of the two buffers. Only their
//     values modulo the cache size influence conflict structure.
type Options struct {
	Geometry cachesim.Geometry
	BaseA    int
	BaseB    int
}

// DefaultOptions returns the lab setup: default geometry, A at DefaultBaseA,
// B at DefaultBaseB.
func DefaultOptions() Options {
	return Options{
		Geometry: cachesim.DefaultGeometry(),
		BaseA:    DefaultBaseA,
		BaseB:    DefaultBaseB,
	}
}

// Result is one candidate's scorecard on one input.
type Result struct {
	// Desc names the candidate (its registration description).
	Desc string
	// Hits, Misses, Evictions are the cold-cache counters over the run;
	// every eviction is also counted in Misses.
	Hits      int
	Misses    int
	Evictions int
	// Correct reports that B is the transpose of the input AND that the
	// input came through the run unchanged.
	Correct bool
}

// Evaluate replays one candidate on src (treated as the n×m input A) and
// returns its scorecard.
//
// Stage 1 (Validate): candidate and input are non-nil; options resolve.
// Stage 2 (Prepare): clone A, allocate B, attach one cold cache to both.
// Stage 3 (Execute): run the candidate; detach probes.
// Stage 4 (Finalize): verify with the oracle and the A-unchanged check.
//
// src itself is never touched — the candidate runs on a clone.
// Complexity: O(n·m) plus the candidate's own work.
func Evaluate(cand Candidate, src *matrix.Matrix, opts *Options) (Result, error) {
	// Validate inputs
	if cand.Fn == nil {
		return Result{}, ErrNilFunc
	}
	if src == nil {
		return Result{}, ErrNilMatrix
	}

	// Resolve options
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Prepare the run: A is a clone, B is fresh, the cache is cold.
	n, m := src.Rows(), src.Cols()
	a := src.Clone()
	b, err := matrix.New(m, n)
	if err != nil {
		return Result{}, fmt.Errorf("harness: allocate B: %w", err)
	}
	sim, err := cachesim.New(o.Geometry)
	if err != nil {
		return Result{}, fmt.Errorf("harness: build cache: %w", err)
	}
	a.Observe(sim, o.BaseA)
	b.Observe(sim, o.BaseB)

	// Execute the candidate under observation.
	cand.Fn(m, n, a, b)

	// Detach before verification so oracle reads stay off the books.
	a.Observe(nil, 0)
	b.Observe(nil, 0)

	st := sim.Stats()

	return Result{
		Desc:      cand.Desc,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		Correct:   trans.IsTranspose(m, n, a, b) && a.Equal(src),
	}, nil
}

// EvaluateAll replays every registered candidate on src, each against its
// own cold cache, in registration order. The first failure aborts.
func EvaluateAll(r *Registry, src *matrix.Matrix, opts *Options) ([]Result, error) {
	results := make([]Result, 0, r.Len())
	for _, cand := range r.Candidates() {
		res, err := Evaluate(cand, src, opts)
		if err != nil {
			return nil, fmt.Errorf("harness: evaluate %q: %w", cand.Desc, err)
		}
		results = append(results, res)
	}

	return results, nil
}
