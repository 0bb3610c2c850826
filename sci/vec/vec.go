// Package vec implements dot/cross products, magnitudes and small
// element-wise helpers for 2-D and 3-D vectors stored as flat slices.
package vec

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Dim selects the geometric dimension of a vector operation.
type Dim int

const (
	Dim2 Dim = 2
	Dim3 Dim = 3
)

// ErrDimension is returned when a Dim other than Dim2 or Dim3 is supplied.
var ErrDimension = errors.New("vec: dimension must be 2 or 3")

// Valid reports whether d is a supported dimension.
func (d Dim) Valid() bool { return d == Dim2 || d == Dim3 }

// ResultLen returns the length of a cross product result in dimension d:
// 1 for Dim2 (a signed area), 3 for Dim3.
func (d Dim) ResultLen() int {
	if d == Dim2 {
		return 1
	}
	return 3
}

// Dot returns the dot product sum(x[i]*y[i]) over the shorter of the
// two slices. Callers restricting the sum to the first n elements
// slice the inputs to n.
func Dot(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	dot := 0.0
	for i := 0; i < n; i++ {
		dot += x[i] * y[i]
	}
	return dot
}

// Magnitude returns the Euclidean norm of x, sqrt(Dot(x, x)).
func Magnitude(x []float64) float64 {
	return math.Sqrt(Dot(x, x))
}

// Cross returns the cross product of x and y in a newly allocated
// slice. For Dim2 the result has length 1 and holds the signed area
// x[0]*y[1] - x[1]*y[0]; for Dim3 it is the standard 3-vector.
func Cross(x, y []float64, d Dim) ([]float64, error) {
	if !d.Valid() {
		return nil, ErrDimension
	}
	dst := make([]float64, d.ResultLen())
	if err := CrossInto(dst, x, y, d); err != nil {
		return nil, err
	}
	return dst, nil
}

// CrossInto writes the cross product of x and y into dst, producing
// the same values as Cross. dst must have length d.ResultLen().
func CrossInto(dst, x, y []float64, d Dim) error {
	switch d {
	case Dim2:
		dst[0] = x[0]*y[1] - x[1]*y[0]
	case Dim3:
		dst[0] = x[1]*y[2] - x[2]*y[1]
		dst[1] = x[2]*y[0] - x[0]*y[2]
		dst[2] = x[0]*y[1] - x[1]*y[0]
	default:
		return ErrDimension
	}
	return nil
}

// Add adds src to dst element-wise in place.
func Add(dst, src []float64) {
	vecmath.AddBlockInPlace(dst, src)
}

// Scale writes s*src into dst.
func Scale(dst, src []float64, s float64) {
	vecmath.ScaleBlock(dst, src, s)
}

// Normalize returns x scaled to unit length in a newly allocated
// slice. A zero vector is returned as a copy, unchanged.
func Normalize(x []float64) []float64 {
	out := make([]float64, len(x))
	m := Magnitude(x)
	if m == 0 {
		copy(out, x)
		return out
	}
	Scale(out, x, 1/m)
	return out
}
