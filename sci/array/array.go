package array

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Number covers the element kinds the allocation helpers support:
// double/single precision reals, signed integers and size-index kinds.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uintptr | ~float32 | ~float64
}

// Zeros returns a zero-initialized slice of n elements.
// For n <= 0 it returns nil. Allocation failure panics; a numerical
// application has no degraded mode to fall back to.
func Zeros[T Number](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Max returns the maximum element of x. x must not be empty.
func Max(x []float64) float64 {
	return floats.Max(x)
}

// Min returns the minimum element of x. x must not be empty.
func Min(x []float64) float64 {
	return floats.Min(x)
}

// MaxIdx returns the index of the first maximum element of x.
// x must not be empty.
func MaxIdx(x []float64) int {
	return floats.MaxIdx(x)
}

// MinIdx returns the index of the first minimum element of x.
// x must not be empty.
func MinIdx(x []float64) int {
	return floats.MinIdx(x)
}

// Max3 returns the largest of a, b and c.
func Max3(a, b, c float64) float64 {
	return math.Max(math.Max(a, b), c)
}
