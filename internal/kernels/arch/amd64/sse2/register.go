//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

// init registers the SSE2-optimized strategy with the kernel registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline,
// so it's available on all amd64 CPUs.
//
// Priority: 10 (medium - preferred over the scalar strategies, but lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		SumQ15: Sum,
	})
}
