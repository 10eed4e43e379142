package trans_test

import (
	"testing"

	"github.com/katalvlaran/cachetrans/matrix"
	"github.com/katalvlaran/cachetrans/trans"
)

// sink defeats dead-code elimination across benchmark iterations.
var sink int32

// benchmarkTranspose runs fn repeatedly on a fixed n×m input.
// Setup cost is excluded via ResetTimer.
func benchmarkTranspose(b *testing.B, fn trans.Func, n, m int) {
	a, err := matrix.Generate(n, m, func(i, j int) int32 { return int32(i*m + j) })
	if err != nil {
		b.Fatalf("generate input: %v", err)
	}
	out, err := matrix.New(m, n)
	if err != nil {
		b.Fatalf("allocate output: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		fn(m, n, a, out)
	}
	sink = out.At(0, 0)
}

// BenchmarkBaseline32x32 benchmarks the row-scan reference on 32×32.
func BenchmarkBaseline32x32(b *testing.B) {
	benchmarkTranspose(b, trans.Baseline, 32, 32)
}

// BenchmarkBlocked32x32 benchmarks the 8×8-block kernel on 32×32.
func BenchmarkBlocked32x32(b *testing.B) {
	benchmarkTranspose(b, trans.Blocked32x32, 32, 32)
}

// BenchmarkBaseline32x64 benchmarks the row-scan reference on 64×32.
func BenchmarkBaseline32x64(b *testing.B) {
	benchmarkTranspose(b, trans.Baseline, 64, 32)
}

// BenchmarkBlocked32x64 benchmarks the stripe kernel on 64×32.
func BenchmarkBlocked32x64(b *testing.B) {
	benchmarkTranspose(b, trans.Blocked32x64, 64, 32)
}

// BenchmarkBaseline64x64 benchmarks the row-scan reference on 64×64.
func BenchmarkBaseline64x64(b *testing.B) {
	benchmarkTranspose(b, trans.Baseline, 64, 64)
}

// BenchmarkBlocked64x64 benchmarks the carry kernel on 64×64.
func BenchmarkBlocked64x64(b *testing.B) {
	benchmarkTranspose(b, trans.Blocked64x64, 64, 64)
}

// BenchmarkSubmit64x64 benchmarks the dispatcher end to end on 64×64.
func BenchmarkSubmit64x64(b *testing.B) {
	benchmarkTranspose(b, trans.Submit, 64, 64)
}
