//go:build amd64 && !purego

package kernels

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register strategies with the global registry.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-q15/internal/kernels/registry"

	// Scalar strategies (pure Go fallback)
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/generic"

	// AMD64 strategies
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/amd64/sse2"
)
