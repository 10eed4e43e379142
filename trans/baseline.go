package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Baseline is the simple row-wise scan transpose, not optimized for the
// cache. Reads of a are stride-1 and cheap; writes of b walk one column
// per input row and dominate the miss count.
//
// It is the correctness reference for every blocked kernel and the
// denominator of their improvement ratios.
// Complexity: O(n·m); no allocation.
func Baseline(m, n int, a, b *matrix.Matrix) {
	var i, j int
	var tmp int32

	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			tmp = a.At(i, j)
			b.Set(j, i, tmp)
		}
	}
}
