//go:build amd64 && !purego

package avx2

// Sum returns the widening sum of all Q1.15 samples in x.
// Returns 0 for an empty slice.
// Uses AVX2 SIMD instructions (VPMADDWD against a ones vector performs the
// widening pairwise sum in hardware, 16 samples per iteration).
func Sum(x []int16) int32 {
	if len(x) == 0 {
		return 0
	}
	return sumQ15AVX2(x)
}

//go:noescape
func sumQ15AVX2(x []int16) int32
