// Package tensor implements determinants and similarity transforms for
// rank-2 tensors in 2 or 3 dimensions, stored as row-major nested
// slices.
package tensor

import (
	"errors"

	"github.com/cwbudde/algo-sci/sci/ndarray"
	"github.com/cwbudde/algo-sci/sci/vec"
)

// ErrDimension is returned when a vec.Dim other than Dim2 or Dim3 is supplied.
var ErrDimension = errors.New("tensor: dimension must be 2 or 3")

// Det returns the determinant of the d×d matrix a: the 2×2 product
// difference for Dim2, the cofactor expansion along the first row for
// Dim3.
func Det(a [][]float64, d vec.Dim) (float64, error) {
	switch d {
	case vec.Dim2:
		return a[0][0]*a[1][1] - a[1][0]*a[0][1], nil
	case vec.Dim3:
		det := a[0][0]*a[1][1]*a[2][2] + a[0][1]*a[1][2]*a[2][0]
		det += a[0][2]*a[1][0]*a[2][1] - a[0][2]*a[1][1]*a[2][0]
		det -= a[0][1]*a[1][0]*a[2][2] + a[0][0]*a[1][2]*a[2][1]
		return det, nil
	default:
		return 0, ErrDimension
	}
}

// Transform applies a to sigma as the similarity transform a·sigma·aᵀ,
// evaluated index-wise as
//
//	result[n][m] = Σ_j a[n][j] Σ_i a[m][i] sigma[j][i]
//
// The double summation is kept literal rather than routed through a
// generic matrix multiply so results match the reference arithmetic
// term for term. The inputs are not modified; the result is a newly
// allocated d×d matrix.
func Transform(a, sigma [][]float64, d vec.Dim) ([][]float64, error) {
	if !d.Valid() {
		return nil, ErrDimension
	}
	dim := int(d)
	result := ndarray.Make2D(dim, dim)
	for n := 0; n < dim; n++ {
		for m := 0; m < dim; m++ {
			x := 0.0
			for j := 0; j < dim; j++ {
				y := 0.0
				for i := 0; i < dim; i++ {
					y += a[m][i] * sigma[j][i]
				}
				x += a[n][j] * y
			}
			result[n][m] = x
		}
	}
	return result, nil
}

// Identity returns the d×d identity matrix, or nil for an invalid
// dimension.
func Identity(d vec.Dim) [][]float64 {
	if !d.Valid() {
		return nil
	}
	dim := int(d)
	m := ndarray.Make2D(dim, dim)
	for i := 0; i < dim; i++ {
		m[i][i] = 1
	}
	return m
}
