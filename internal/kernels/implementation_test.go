package kernels

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernels/registry"
)

// TestForceGenericSelection verifies that ForceGeneric restricts lookup to
// the scalar strategies and that the selected scalar strategy still matches
// the baseline.
func TestForceGenericSelection(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil under ForceGeneric")
	}
	if entry.SIMDLevel != cpu.SIMDNone {
		t.Fatalf("ForceGeneric selected %q (level %s), want a scalar strategy",
			entry.Name, entry.SIMDLevel)
	}

	rng := rand.New(rand.NewSource(21))
	x := randomBlock(rng, 333)
	if got, want := entry.SumQ15(x), sumRef(x); got != want {
		t.Fatalf("forced scalar strategy %q = %d, reference = %d", entry.Name, got, want)
	}
}

// TestForcedFeatureSelection verifies that forcing feature flags steers
// lookup toward the matching SIMD strategy when it is registered.
func TestForcedFeatureSelection(t *testing.T) {
	defer cpu.ResetDetection()

	cases := []struct {
		name     string
		features cpu.Features
		want     cpu.SIMDLevel
	}{
		{"avx2 over sse2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}, cpu.SIMDAVX2},
		{"sse2 only", cpu.Features{HasSSE2: true, Architecture: "amd64"}, cpu.SIMDSSE2},
		{"neon", cpu.Features{HasNEON: true, Architecture: "arm64"}, cpu.SIMDNEON},
		{"no simd at all", cpu.Features{}, cpu.SIMDNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tc.features)

			entry := registry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			// The matching arch package only links in on its GOARCH; when it
			// is absent lookup legitimately falls through to the scalar tier.
			if entry.SIMDLevel != tc.want && entry.SIMDLevel != cpu.SIMDNone {
				t.Errorf("selected %q (level %s), want level %s or scalar fallback",
					entry.Name, entry.SIMDLevel, tc.want)
			}
		})
	}
}

// TestSelectedImplementation confirms the resolved strategy reports a
// registered name.
func TestSelectedImplementation(t *testing.T) {
	name := SelectedImplementation()
	if name == "" {
		t.Fatal("SelectedImplementation returned empty name")
	}

	found := false
	for _, e := range registry.Global.ListEntries() {
		if e.Name == name {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("SelectedImplementation() = %q, not present in registry", name)
	}
}
