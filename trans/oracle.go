package trans

import "github.com/katalvlaran/cachetrans/matrix"

// IsTranspose reports whether b is the transpose of a: for every i in
// [0,n) and j in [0,m), a[i][j] == b[j][i].
//
// Side-effect-free and never on the performance path; intended for
// assertions after a kernel run. Shapes are trusted like everywhere else
// in this package: a must be n×m and b must be m×n.
// Complexity: O(n·m).
func IsTranspose(m, n int, a, b *matrix.Matrix) bool {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if a.At(i, j) != b.At(j, i) {
				return false
			}
		}
	}

	return true
}
