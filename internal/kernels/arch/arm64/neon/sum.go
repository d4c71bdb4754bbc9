//go:build arm64 && !purego

package neon

// Sum returns the widening sum of all Q1.15 samples in x.
// Returns 0 for an empty slice.
// Uses NEON SIMD instructions (VUADDLV widening reduction, 8 samples per
// iteration).
func Sum(x []int16) int32 {
	if len(x) == 0 {
		return 0
	}
	return sumQ15NEON(x)
}

//go:noescape
func sumQ15NEON(x []int16) int32
