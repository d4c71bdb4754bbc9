//go:build amd64 && !purego

package sse2

// Sum returns the widening sum of all Q1.15 samples in x.
// Returns 0 for an empty slice.
// Uses SSE2 SIMD instructions (PMADDWD against a ones vector performs the
// widening pairwise sum in hardware).
func Sum(x []int16) int32 {
	if len(x) == 0 {
		return 0
	}
	return sumQ15SSE2(x)
}

//go:noescape
func sumQ15SSE2(x []int16) int32
