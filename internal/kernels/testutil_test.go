package kernels

import "math/rand"

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
	{"64K", 65536},
}

// Test helper functions shared across all test files

// sumRef is the portable scalar baseline every strategy must match bit-for-bit.
func sumRef(x []int16) int32 {
	var sum int32
	for i := range x {
		sum += int32(x[i])
	}
	return sum
}

// meanRef applies the shared divide-and-truncate contract to the baseline sum.
func meanRef(x []int16) int16 {
	if len(x) == 0 {
		return 0
	}
	return int16(sumRef(x) / int32(len(x)))
}

func randomBlock(rng *rand.Rand, n int) []int16 {
	x := make([]int16, n)
	for i := range x {
		x[i] = int16(rng.Intn(65536) - 32768)
	}
	return x
}

func sizeStr(n int) string {
	return "n=" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}
