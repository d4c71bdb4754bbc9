package kernels

// Mean returns the arithmetic mean of the Q1.15 samples in x.
// Returns 0 for an empty slice.
//
// The mean is computed as the widening Q17.15 sum divided by len(x) using
// integer division, which truncates toward zero (a negative mean with a
// nonzero remainder rounds toward zero, not toward negative infinity). The
// 32-bit quotient is then narrowed to Q1.15 without saturation; for any
// input within the documented safe length the true mean fits in 16 bits, so
// the narrowing cannot clip.
//
// Meaningful results require 0 < len(x) <= 1<<16. Longer inputs can wrap
// the 32-bit accumulator; the result is then wrong, but still identical
// under every execution strategy.
func Mean(x []int16) int16 {
	if len(x) == 0 {
		return 0
	}
	return int16(Sum(x) / int32(len(x)))
}

// MeanInto writes the arithmetic mean of x to *dst.
//
// This is the pointer-shaped form of Mean for callers that own a result
// slot: exactly one write to *dst per invocation. Empty input performs no
// write. The caller owns serialization if multiple goroutines share dst;
// concurrent calls on disjoint inputs and destinations are safe.
func MeanInto(dst *int16, x []int16) {
	if len(x) == 0 {
		return
	}
	*dst = Mean(x)
}
