// Package harness — candidate registry.
package harness

import (
	"errors"

	"github.com/katalvlaran/cachetrans/trans"
)

// Sentinel errors for registry operations.
var (
	// ErrNilFunc indicates an attempt to register or evaluate a nil routine.
	ErrNilFunc = errors.New("harness: routine must be non-nil")
	// ErrEmptyDesc indicates an empty candidate description.
	ErrEmptyDesc = errors.New("harness: description must be non-empty")
	// ErrDuplicateDesc indicates a description registered twice.
	ErrDuplicateDesc = errors.New("harness: description already registered")
	// ErrUnknownDesc indicates Lookup found no candidate under a description.
	ErrUnknownDesc = errors.New("harness: no candidate under that description")
)

// Candidate is one registered transpose routine with its human-readable
// description. The description doubles as the candidate's identity.
type Candidate struct {
	Desc string
	Fn   trans.Func
}

// Registry holds candidates in registration order. The zero value is NOT
// ready to use; construct with NewRegistry. Registry is a plain builder,
// not safe for concurrent registration.
type Registry struct {
	candidates []Candidate
	byDesc     map[string]int // description → index into candidates
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byDesc: make(map[string]int)}
}

// Register adds fn under desc, preserving call order.
// Stage 1 (Validate): non-nil routine, non-empty unique description.
// Stage 2 (Execute): append and index.
// Complexity: O(1) amortized.
func (r *Registry) Register(fn trans.Func, desc string) error {
	// Validate the candidate before mutating anything
	if fn == nil {
		return ErrNilFunc
	}
	if desc == "" {
		return ErrEmptyDesc
	}
	if _, exists := r.byDesc[desc]; exists {
		return ErrDuplicateDesc
	}

	// Append and index under the description
	r.byDesc[desc] = len(r.candidates)
	r.candidates = append(r.candidates, Candidate{Desc: desc, Fn: fn})

	return nil
}

// Candidates returns the registered candidates in registration order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)

	return out
}

// Len returns the number of registered candidates.
func (r *Registry) Len() int {
	return len(r.candidates)
}

// Lookup returns the candidate registered under exactly desc — the
// driver-searches-for-the-submission-string operation.
// Complexity: O(1).
func (r *Registry) Lookup(desc string) (Candidate, error) {
	idx, ok := r.byDesc[desc]
	if !ok {
		return Candidate{}, ErrUnknownDesc
	}

	return r.candidates[idx], nil
}
