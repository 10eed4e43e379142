package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Experimental is the scratch slot registered alongside the submission for
// miss-count comparisons. It currently aliases the 64×64 stripe-and-carry
// walk on every shape, including the ones Submit would route to a
// specialized kernel — useful for measuring what the carry scheme alone
// buys on 32×32 and 32×64.
//
// Not part of the library contract; its behavior may change between
// experiments. Only the invariant b[j][i] == a[i][j] is guaranteed.
func Experimental(m, n int, a, b *matrix.Matrix) {
	Blocked64x64(m, n, a, b)
}
