//go:build !amd64 && !arm64

package kernels

// This file imports the scalar implementation packages for architectures
// without SIMD kernels.

import (
	// Import registry package
	_ "github.com/cwbudde/algo-q15/internal/kernels/registry"

	// Scalar strategies (pure Go fallback)
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/generic"
)
