package kernels

import (
	"sync"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

var (
	sumImpl     func([]int16) int32
	sumInitOnce sync.Once
)

func initSumOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernels: no sum implementation registered")
	}
	if entry.SumQ15 == nil {
		panic("kernels: selected implementation missing sum operation")
	}
	sumImpl = entry.SumQ15
}

// Sum returns the widening sum of all Q1.15 samples in x.
// Returns 0 for an empty slice.
//
// Samples are accumulated by their raw 16-bit integer value into a 32-bit
// total (Q1.15 terms into a Q17.15 accumulator, no rescaling). The total is
// exact for len(x) <= 1<<16; beyond that it wraps modulo 2^32, identically
// under every execution strategy.
func Sum(x []int16) int32 {
	sumInitOnce.Do(initSumOperation)
	return sumImpl(x)
}

// SelectedImplementation returns the name of the execution strategy resolved
// for the current CPU. Intended for diagnostics and tests.
func SelectedImplementation() string {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return ""
	}
	return entry.Name
}
