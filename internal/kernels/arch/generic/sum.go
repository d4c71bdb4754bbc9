package generic

// Sum returns the widening sum of all Q1.15 samples in x.
// Returns 0 for an empty slice.
//
// Each sample contributes its raw 16-bit integer value to a 32-bit
// accumulator (1.15 terms into a 17.15 total). Accumulation wraps modulo
// 2^32; callers that need an exact total must keep len(x) within the
// documented safe bound.
func Sum(x []int16) int32 {
	var sum int32
	for i := range x {
		sum += int32(x[i])
	}
	return sum
}

// SumUnrolled returns the widening sum of all Q1.15 samples in x,
// processing 8 samples per iteration to amortize loop-control overhead.
// The trailing elements below the group size go through the same scalar
// accumulation as Sum.
//
// Bit-identical to Sum for every input: both accumulate int32 terms
// modulo 2^32, and that addition is associative and commutative.
func SumUnrolled(x []int16) int32 {
	var sum int32

	i := 0
	for ; i <= len(x)-8; i += 8 {
		sum += int32(x[i]) + int32(x[i+1])
		sum += int32(x[i+2]) + int32(x[i+3])
		sum += int32(x[i+4]) + int32(x[i+5])
		sum += int32(x[i+6]) + int32(x[i+7])
	}
	for ; i < len(x); i++ {
		sum += int32(x[i])
	}

	return sum
}
