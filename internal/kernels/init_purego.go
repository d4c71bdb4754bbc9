//go:build purego && (amd64 || arm64)

package kernels

import (
	// Scalar strategies (pure Go fallback)
	_ "github.com/cwbudde/algo-q15/internal/kernels/arch/generic"
	// Import registry package
	_ "github.com/cwbudde/algo-q15/internal/kernels/registry"
)
