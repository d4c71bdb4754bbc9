//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

// init registers the AVX2-optimized strategy with the kernel registry.
//
// AVX2 provides 256-bit SIMD operations with improved integer performance
// compared to SSE2. Available on Intel Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (high - preferred over SSE2 and the scalar strategies when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		SumQ15: Sum,
	})
}
