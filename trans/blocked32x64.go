package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Blocked32x64 transposes a 64-row × 32-column matrix in 8-row bands
// walked as 4-column stripes, alternating the row direction between
// adjacent stripes.
//
// Two adjacent stripes write b rows that extend across the same b block;
// descending through the odd stripe lets the b lines touched last at the
// stripe boundary stay hot into the next stripe's first iteration, so a
// stripe pair pays for its b lines once. The 4-column stripe also keeps
// the scalar count at four: loading a whole 8-element row of a here would
// conflict with the partially filled b lines.
//
// Precondition: n is a multiple of 8 and m a multiple of 4. The dispatcher
// only routes the exact (m=32, n=64) shape here.
func Blocked32x64(m, n int, a, b *matrix.Matrix) {
	var i, j, k int
	var c0, c1, c2, c3 int32

	for i = 0; i < n; i += bandRows {
		for j = 0; j < m; j += stripeCols {
			if (j/stripeCols)%2 == 0 {
				// Even stripe: ascend the band.
				for k = i; k < i+bandRows; k++ {
					c0 = a.At(k, j)
					c1 = a.At(k, j+1)
					c2 = a.At(k, j+2)
					c3 = a.At(k, j+3)

					b.Set(j, k, c0)
					b.Set(j+1, k, c1)
					b.Set(j+2, k, c2)
					b.Set(j+3, k, c3)
				}
			} else {
				// Odd stripe: descend, re-entering where the even stripe left off.
				for k = i + bandRows - 1; k >= i; k-- {
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
		}
	}
}
