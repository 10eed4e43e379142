package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Blocked32x32 transposes a 32×32 matrix in 8×8 blocks, reading one full
// row of a block into eight scalars before any write to b.
//
// Geometry: at 32 columns × 4 bytes, a row spans 128 bytes, so rows of a
// (and of b) that are eight apart map to the same cache sets. Off-diagonal
// blocks touch disjoint sets for a and b: eight cold misses for the a rows
// plus eight for the b lines per block. On diagonal blocks a[k][k..k+7]
// and b[k][k..k+7] share a set and evict each other; hoisting the whole
// row into c0..c7 before the eight writes masks that conflict to one
// round-trip per k.
//
// Precondition: n and m are multiples of 8. The dispatcher only routes the
// exact 32×32 shape here.
func Blocked32x32(m, n int, a, b *matrix.Matrix) {
	var i, j, k int
	var c0, c1, c2, c3, c4, c5, c6, c7 int32

	for i = 0; i < n; i += blockDim {
		for j = 0; j < m; j += blockDim {
			for k = i; k < i+blockDim; k++ {
				// Drain the whole block row of a first: one line, one miss.
				c0 = a.At(k, j)
				c1 = a.At(k, j+1)
				c2 = a.At(k, j+2)
				c3 = a.At(k, j+3)
				c4 = a.At(k, j+4)
				c5 = a.At(k, j+5)
				c6 = a.At(k, j+6)
				c7 = a.At(k, j+7)

				// Scatter into one column of b: eight distinct b lines.
				b.Set(j, k, c0)
				b.Set(j+1, k, c1)
				b.Set(j+2, k, c2)
				b.Set(j+3, k, c3)
				b.Set(j+4, k, c4)
				b.Set(j+5, k, c5)
				b.Set(j+6, k, c6)
				b.Set(j+7, k, c7)
			}
		}
	}
}
