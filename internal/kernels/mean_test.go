package kernels

import (
	"math/rand"
	"testing"
)

func TestMean(t *testing.T) {
	cases := []struct {
		name string
		x    []int16
		want int16
	}{
		{name: "empty", x: nil, want: 0},
		{name: "single element is itself", x: []int16{-12345}, want: -12345},
		{name: "symmetric around zero", x: []int16{4096, -4096}, want: 0},
		{name: "constant block", x: []int16{100, 100, 100, 100, 100}, want: 100},
		{name: "all min", x: []int16{-32768, -32768, -32768}, want: -32768},
		{name: "all max", x: []int16{32767, 32767, 32767, 32767}, want: 32767},
		{name: "simple", x: []int16{1, 2, 3, 4, 5}, want: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mean(tc.x); got != tc.want {
				t.Fatalf("Mean() = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestMeanTruncatesTowardZero pins the division convention: (3 + -4) / 2 is
// -0.5 and must truncate to 0, not round toward negative infinity to -1.
func TestMeanTruncatesTowardZero(t *testing.T) {
	if got := Mean([]int16{3, -4}); got != 0 {
		t.Fatalf("Mean([3,-4]) = %d, want 0 (truncation toward zero)", got)
	}

	// Positive counterpart for symmetry: 7/2 = 3.5 -> 3.
	if got := Mean([]int16{3, 4}); got != 3 {
		t.Fatalf("Mean([3,4]) = %d, want 3", got)
	}
}

// TestMeanConstantInput: the mean of n copies of v is exactly v; division
// leaves no remainder so truncation has no effect.
func TestMeanConstantInput(t *testing.T) {
	for _, v := range []int16{-32768, -1, 0, 1, 23456, 32767} {
		for _, n := range []int{1, 2, 5, 8, 9, 64, 1000} {
			x := make([]int16, n)
			for i := range x {
				x[i] = v
			}
			if got := Mean(x); got != v {
				t.Fatalf("Mean of %d copies of %d = %d, want %d", n, v, got, v)
			}
		}
	}
}

// TestMeanRemainderElementsCounted uses a block where only the elements past
// the last full unroll/vector group are nonzero; a broken tail loop would
// return 0.
func TestMeanRemainderElementsCounted(t *testing.T) {
	x := make([]int16, 21) // 21 = 16 + 5: remainder under both group sizes
	x[17] = 2100
	if got := Mean(x); got != 100 {
		t.Fatalf("Mean() = %d, want 100 (remainder elements dropped?)", got)
	}
}

func TestMeanReferenceParity(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	sizes := []int{1, 2, 3, 5, 7, 8, 9, 16, 17, 100, 1000, 4096}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := randomBlock(rng, n)
			want := meanRef(x)
			if got := Mean(x); got != want {
				t.Fatalf("Mean() = %d, reference = %d", got, want)
			}
		})
	}
}

func TestMeanInto(t *testing.T) {
	var dst int16 = 42

	MeanInto(&dst, nil)
	if dst != 42 {
		t.Fatalf("MeanInto wrote %d on empty input, want destination untouched", dst)
	}

	MeanInto(&dst, []int16{5, 7})
	if dst != 6 {
		t.Fatalf("MeanInto wrote %d, want 6", dst)
	}
}
