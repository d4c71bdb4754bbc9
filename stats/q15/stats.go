// Package q15 provides fixed-point statistics over blocks of Q1.15 samples.
//
// All reductions use a 32-bit internal accumulator: Q1.15 terms accumulate
// in Q17.15 format, so the full precision of the intermediate result is
// preserved and there is no risk of internal overflow for blocks up to
// 65536 samples. Results are truncated back to Q1.15.
//
// The execution strategy (portable scalar, unrolled scalar, SSE2, AVX2 or
// NEON) is resolved once at startup from the detected CPU features; every
// strategy returns the identical bit pattern for every input. Build with
// the purego tag to restrict selection to the pure Go strategies.
package q15

import (
	"github.com/cwbudde/algo-q15/internal/kernels"
)

// Sum returns the widening sum of all samples in x in Q17.15 format.
// Returns 0 for an empty block.
//
// The sum is exact for len(x) <= 65536. Longer blocks can wrap the 32-bit
// accumulator; this is a documented precondition, not a runtime-checked
// error.
func Sum(x []int16) int32 {
	return kernels.Sum(x)
}

// Mean returns the arithmetic mean of the samples in x.
// Returns 0 for an empty block.
//
// The Q17.15 sum is divided by len(x) with integer division, truncating
// toward zero (a mean of -0.5 sample steps yields 0, not -1), and the
// quotient is narrowed to Q1.15. No rounding and no saturation are applied
// anywhere; for blocks within the documented length bound the true mean
// always fits.
func Mean(x []int16) int16 {
	return kernels.Mean(x)
}

// MeanInto writes the arithmetic mean of x to *dst: exactly one write per
// invocation for a non-empty block, no write for an empty one.
//
// The kernel holds no state between calls and reads x only, so concurrent
// invocations on disjoint inputs are safe; callers sharing a destination
// slot own its serialization.
func MeanInto(dst *int16, x []int16) {
	kernels.MeanInto(dst, x)
}

// Implementation returns the name of the execution strategy selected for
// the current CPU ("unrolled", "sse2", "avx2", "neon", ...).
func Implementation() string {
	return kernels.SelectedImplementation()
}
