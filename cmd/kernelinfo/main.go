// Command kernelinfo prints the CPU features detected for the Q15 kernels
// and the execution strategy selected for this machine.
//
// Usage:
//
//	kernelinfo [flags]
//
// Examples:
//
//	kernelinfo
//	kernelinfo -check
//	kernelinfo -check -size 65536
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
	"github.com/cwbudde/algo-q15/stats/q15"
)

func main() {
	check := flag.Bool("check", false, "run all compatible strategies on a random block and compare results")
	size := flag.Int("size", 4096, "block size in samples for -check")
	seed := flag.Int64("seed", 1, "random seed for -check")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints detected CPU features and the selected Q15 kernel strategy.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	features := cpu.DetectFeatures()

	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("sse2=%v avx2=%v neon=%v\n\n", features.HasSSE2, features.HasAVX2, features.HasNEON)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tLEVEL\tPRIORITY\tCOMPATIBLE")
	for _, e := range registry.Global.ListEntries() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", e.Name, e.SIMDLevel, e.Priority, cpu.Supports(features, e.SIMDLevel))
	}
	w.Flush()

	fmt.Printf("\nselected: %s\n", q15.Implementation())

	if *check {
		if err := selfCheck(*size, *seed, features); err != nil {
			fmt.Fprintln(os.Stderr, "self-check FAILED:", err)
			os.Exit(1)
		}
		fmt.Println("self-check OK: all compatible strategies agree")
	}
}

// selfCheck runs every compatible strategy on the same random block and
// verifies they all return the identical bit pattern.
func selfCheck(size int, seed int64, features cpu.Features) error {
	if size <= 0 {
		return fmt.Errorf("invalid block size %d", size)
	}

	rng := rand.New(rand.NewSource(seed))
	x := make([]int16, size)
	for i := range x {
		x[i] = int16(rng.Intn(65536) - 32768)
	}

	var (
		first     int32
		firstName string
	)
	for _, e := range registry.Global.ListEntries() {
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		got := e.SumQ15(x)
		if firstName == "" {
			first, firstName = got, e.Name
			continue
		}
		if got != first {
			return fmt.Errorf("strategy %q = %d, %q = %d", e.Name, got, firstName, first)
		}
	}
	if firstName == "" {
		return fmt.Errorf("no compatible strategies registered")
	}

	return nil
}
