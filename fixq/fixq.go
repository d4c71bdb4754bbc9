// Package fixq defines the Q1.15 fixed-point sample format used by the
// kernels and provides conversion glue between Q1.15 blocks and float64
// blocks.
//
// A Q1.15 sample is a twos-complement int16 representing value/32768, i.e. a
// real number in [-1, 1). The kernels accumulate Q1.15 terms into a Q17.15
// int32 total (17 integer bits, 15 fractional bits) by raw integer addition;
// no rescaling takes place during accumulation.
//
// The conversions here are representation glue only: they saturate at the
// representable Q1.15 range on the way in, as any codec front-end would, but
// the reduction kernels themselves never saturate.
package fixq

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// One is the Q1.15 scaling factor: real value = sample / One.
	// Note +1.0 itself is not representable; Max corresponds to 1 - 2^-15.
	One = 32768

	// Max is the largest representable Q1.15 sample (0.999969...).
	Max = math.MaxInt16

	// Min is the smallest representable Q1.15 sample (-1.0 exactly).
	Min = math.MinInt16
)

// ToFloat64 converts a single Q1.15 sample to its real value in [-1, 1).
func ToFloat64(s int16) float64 {
	return float64(s) / One
}

// FromFloat64 converts a real value to the nearest Q1.15 sample, clamping
// to the representable range.
func FromFloat64(v float64) int16 {
	scaled := math.Round(v * One)
	if scaled > Max {
		return Max
	}
	if scaled < Min {
		return Min
	}
	return int16(scaled)
}

// ToFloat64Block converts a block of Q1.15 samples to their real values.
// dst and src must have equal length.
//
// The integer widening runs per element; the 1/32768 scaling runs as a
// vectorized block operation.
func ToFloat64Block(dst []float64, src []int16) {
	if len(dst) != len(src) {
		panic("fixq: block length mismatch")
	}
	for i := range src {
		dst[i] = float64(src[i])
	}
	vecmath.ScaleBlock(dst, dst, 1.0/One)
}

// FromFloat64Block converts a block of real values to Q1.15 samples,
// rounding to nearest and clamping to the representable range.
// dst and src must have equal length.
func FromFloat64Block(dst []int16, src []float64) {
	if len(dst) != len(src) {
		panic("fixq: block length mismatch")
	}

	scaled := make([]float64, len(src))
	vecmath.ScaleBlock(scaled, src, One)

	for i, v := range scaled {
		r := math.Round(v)
		switch {
		case r > Max:
			dst[i] = Max
		case r < Min:
			dst[i] = Min
		default:
			dst[i] = int16(r)
		}
	}
}
