package generic

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

// init registers the scalar (pure Go) strategies with the kernel registry.
//
// The generic strategy is the reference baseline; the unrolled strategy is
// registered above it so it becomes the portable default while generic stays
// addressable for parity testing. Both carry SIMDNone so they remain eligible
// under ForceGeneric.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		SumQ15: Sum,
	})

	registry.Global.Register(registry.OpEntry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  5,

		SumQ15: SumUnrolled,
	})
}
