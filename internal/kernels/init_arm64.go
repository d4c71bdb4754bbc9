//go:build arm64 && !purego

package kernels

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register strategies with the global registry.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-q15/internal/kernels/registry"

	// Scalar strategies (pure Go fallback)
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/generic"

	// ARM64 strategies
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/arm64/neon"
)
