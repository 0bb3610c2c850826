// Package grid maps integer indices onto linearly or logarithmically
// spaced sample grids, typically to build abscissa arrays for an
// interpolation.
package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linear returns the i-th of n linearly spaced values covering
// [xmin, xmax]. n must be at least 2.
func Linear(i, n int, xmin, xmax float64) float64 {
	return xmin + (xmax-xmin)*float64(i)/float64(n-1)
}

// Log10 returns the i-th of n log10-spaced values covering
// [xmin, xmax]. xmin and xmax must be positive and n at least 2.
func Log10(i, n int, xmin, xmax float64) float64 {
	return math.Pow(10, math.Log10(xmin)+(math.Log10(xmax)-math.Log10(xmin))*float64(i)/float64(n-1))
}

// Linspace fills dst with linearly spaced values covering [xmin, xmax]
// and returns it. len(dst) must be at least 2.
func Linspace(dst []float64, xmin, xmax float64) []float64 {
	return floats.Span(dst, xmin, xmax)
}

// Logspace fills dst with log10-spaced values covering [xmin, xmax]
// and returns it. xmin and xmax must be positive and len(dst) at
// least 2.
func Logspace(dst []float64, xmin, xmax float64) []float64 {
	floats.Span(dst, math.Log10(xmin), math.Log10(xmax))
	for i, v := range dst {
		dst[i] = math.Pow(10, v)
	}
	return dst
}
