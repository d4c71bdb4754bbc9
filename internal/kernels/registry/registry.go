// Package registry provides the implementation registry for the Q15 kernels.
//
// The registry-based dispatch system allows multiple execution strategies
// (portable scalar, unrolled scalar, SSE2, AVX2, NEON) to coexist. The best
// strategy for the current CPU is selected automatically at runtime.
//
// Architecture-specific implementations register themselves via init()
// functions, and the kernels package uses the registry to select the best
// implementation once at startup based on detected CPU features. All
// registered strategies compute bit-identical results; they differ only in
// throughput.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-q15/internal/cpu"
)

// OpEntry represents a registered execution strategy for the Q15 kernels.
//
// Each entry contains typed function pointers for the operations implemented
// at a specific SIMD level.
type OpEntry struct {
	// Name is a human-readable identifier for this strategy
	// (e.g., "generic", "unrolled", "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this strategy.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible strategies
	// exist. Higher priority strategies are preferred. Suggested priorities:
	//   - Generic scalar (SIMDNone): 0
	//   - Unrolled scalar (SIMDNone): 5
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// SumQ15 returns the widening sum of all Q1.15 samples in x.
	//
	// Each 16-bit sample is sign-extended and accumulated into a 32-bit
	// total (1.15 terms into a 17.15 accumulator, raw integer magnitudes,
	// no rescaling). Accumulation is modulo 2^32, so every strategy yields
	// the identical bit pattern for every input regardless of summation
	// order.
	SumQ15 func(x []int16) int32
}

// OpRegistry manages the registration and lookup of kernel strategies.
//
// Strategies register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority strategy compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all kernel operations.
var Global = &OpRegistry{}

// Register adds an execution strategy to the registry.
//
// This function is typically called from init() functions in
// architecture-specific implementation packages. It is safe to call
// concurrently, but all registrations should complete before the first call
// to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best execution strategy for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible strategies are found, returns nil (which should never happen if
// a scalar fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil // Should never happen if a scalar fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
