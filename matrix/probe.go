package matrix

// Probe observes every element access of an observed Matrix, receiving the
// BYTE offset of the touched element (virtual base + 4·flatIndex).
//
// The cachesim package's Cache satisfies Probe, which is how the harness
// counts hits and misses for a kernel run without instrumenting the kernel.
// Implementations must not mutate the matrix they observe.
type Probe interface {
	// Load records a read of the element at byte address addr.
	Load(addr int)
	// Store records a write of the element at byte address addr.
	Store(addr int)
}

// Observe attaches p as the access observer of m, reporting addresses
// relative to the virtual base address base. A nil p detaches observation
// and restores the allocation-free fast path.
//
// base exists so that two matrices can be laid out the way an evaluation
// driver lays out its buffers: conflict misses depend on the two base
// addresses' congruence modulo the cache size, not on Go's allocator.
// Complexity: O(1).
func (m *Matrix) Observe(p Probe, base int) {
	m.probe = p
	m.base = base
}
