package q15_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-q15/stats/q15"
)

func BenchmarkMean(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	sizes := []int{64, 1024, 16384, 65536}

	for _, size := range sizes {
		x := make([]int16, size)
		for i := range x {
			x[i] = int16(rng.Intn(65536) - 32768)
		}

		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 2))
			for i := 0; i < b.N; i++ {
				_ = q15.Mean(x)
			}
		})
	}
}
