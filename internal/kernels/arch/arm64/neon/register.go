//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

// init registers the NEON-optimized strategy with the kernel registry.
//
// NEON (ARM Advanced SIMD) provides 128-bit SIMD operations and is mandatory
// on ARMv8 (arm64), so it's available on all arm64 CPUs. The kernel processes
// 8 Q1.15 samples per iteration.
//
// Priority: 15 (medium-high - ARM's equivalent to AVX/AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		SumQ15: Sum,
	})
}
