// Package trans defines the shared routine signature, the tuning
// constants, and the driver-facing description strings.
package trans

import "github.com/katalvlaran/cachetrans/matrix"

// Func is the signature every transpose routine shares: a holds n rows of
// m columns, b holds m rows of n columns, and after the call
// b[j][i] == a[i][j] for all i in [0,n), j in [0,m).
type Func func(m, n int, a, b *matrix.Matrix)

// Blocking constants, fixed by the target cache geometry (32-byte lines of
// eight int32 elements).
const (
	// blockDim is the square block edge used by Blocked32x32: one block row
	// is exactly one cache line.
	blockDim = 8
	// bandRows is the outer band height of the stripe kernels: at 32
	// columns, rows eight apart alias in the cache.
	bandRows = 8
	// stripeCols is the stripe width of the stripe kernels: four columns
	// keep the live scalars within the register budget.
	stripeCols = 4
)

// Description strings under which the candidates are registered.
//
// SubmitDesc is a stable identifier the evaluation driver searches for and
// MUST NOT be altered.
const (
	SubmitDesc       = "Transpose submission"
	BaselineDesc     = "Simple row-wise scan transpose"
	ExperimentalDesc = "test"
)

// Registrar accepts transpose candidates, each under a human-readable
// description. harness.Registry satisfies it; trans deliberately does not
// import harness, so any driver can plug in.
type Registrar interface {
	Register(fn Func, desc string) error
}
