package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Blocked64x64 transposes in 8-row bands and 4-column stripes with
// alternating direction, carrying four deferred elements across each
// stripe boundary in scalars.
//
// Geometry: a 64-column row spans 256 bytes, so rows a mere FOUR apart
// alias in the cache — within an 8-row band, the a line for row k is
// evicted by the row k+4 load before the odd stripe returns to it. The
// only way to stay on budget is to not reload it: during the even stripe,
// at k == i+1, the kernel also reads a[i+1][j+4..j+7] (the same a line it
// already paid for) into c4..c7 and holds them; the odd stripe then stores
// c4..c7 at its own k == i+1 instead of re-reading a. Row i+1 is the one
// whose a line is still resident at capture time and whose b line has the
// longest re-use window before eviction in the descending pass.
//
// Per stripe pair the carry lives through {fill → held → drain}; it is
// written before read exactly once, and the next even stripe starts a
// fresh capture.
//
// Bounds are parametric in (m, n): ragged bands and stripes fall back to
// short copy loops, and the carry engages only when the full stripe-pair
// geometry is present. That keeps this kernel a correct (if not
// cache-optimal) transpose for ANY shape, which is what the dispatcher's
// fallback arm relies on.
func Blocked64x64(m, n int, a, b *matrix.Matrix) {
	var i, j, k, c, iEnd, jEnd int
	var c0, c1, c2, c3, c4, c5, c6, c7 int32
	var held bool

	for i = 0; i < n; i += bandRows {
		iEnd = min(i+bandRows, n)
		for j = 0; j < m; j += stripeCols {
			jEnd = min(j+stripeCols, m)
			if (j/stripeCols)%2 == 0 {
				held = false
				if iEnd == i+bandRows && j+2*stripeCols <= m {
					// Full geometry: ascend with the speculative capture at k == i+1.
					for k = i; k < iEnd; k++ {
						c0 = a.At(k, j)
						c1 = a.At(k, j+1)
						c2 = a.At(k, j+2)
						c3 = a.At(k, j+3)

						if k == i+1 {
							// Same a line as c0..c3: paid for already, free to bank.
							c4 = a.At(k, j+4)
							c5 = a.At(k, j+5)
							c6 = a.At(k, j+6)
							c7 = a.At(k, j+7)
						}

						b.Set(j, k, c0)
						b.Set(j+1, k, c1)
						b.Set(j+2, k, c2)
						b.Set(j+3, k, c3)
					}
					held = true
				} else {
					// Ragged band or trailing stripe: plain ascending copy.
					for k = i; k < iEnd; k++ {
						for c = j; c < jEnd; c++ {
							b.Set(c, k, a.At(k, c))
						}
					}
				}
			} else {
				if held {
					// Descend; at k == i+1 the carry supplies the four elements
					// whose a line is long evicted.
					for k = iEnd - 1; k >= i; k-- {
						if k == i+1 {
							b.Set(j, k, c4)
							b.Set(j+1, k, c5)
							b.Set(j+2, k, c6)
							b.Set(j+3, k, c7)
						} else {
							c0 = a.At(k, j)
							c1 = a.At(k, j+1)
							c2 = a.At(k, j+2)
							c3 = a.At(k, j+3)

							b.Set(j, k, c0)
							b.Set(j+1, k, c1)
							b.Set(j+2, k, c2)
							b.Set(j+3, k, c3)
						}
					}
					held = false
				} else {
					// No carry available: plain descending copy.
					for k = iEnd - 1; k >= i; k-- {
						for c = j; c < jEnd; c++ {
							b.Set(c, k, a.At(k, c))
						}
					}
				}
			}
		}
	}
}
