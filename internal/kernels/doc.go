// Package kernels provides the Q1.15 fixed-point reduction kernels with
// runtime-selected execution strategies.
//
// Each operation resolves its implementation exactly once (sync.Once) by
// looking up the highest-priority registered strategy compatible with the
// detected CPU features; after that the hot path is a plain function call
// with no per-call branching. All strategies are bit-exact equivalents of
// the portable scalar baseline.
package kernels
