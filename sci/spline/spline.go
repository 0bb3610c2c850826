package spline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-sci/sci/array"
)

// Func evaluates the sampled function at x. Parameters travel in the
// closure rather than in a separate parameter block.
type Func func(x float64) float64

// Errors returned by the spline constructors.
var (
	ErrTooFewPoints   = errors.New("spline: need at least 2 sample points")
	ErrLengthMismatch = errors.New("spline: abscissa and ordinate lengths differ")
	// ErrNonPositive indicates a sampled value with no log10.
	ErrNonPositive = errors.New("spline: sampled value must be positive for log10 interpolation")
)

// Spline is a natural cubic interpolant over fixed abscissas. It
// reproduces the sampled ordinates exactly at the knots and is C²
// between them. Evaluation outside the knot range extrapolates the
// end segment's cubic.
type Spline struct {
	xs []float64
	ys []float64
	y2 []float64 // second derivatives at the knots
}

// New constructs a natural cubic spline through (xs[i], ys[i]). The
// abscissas must be sorted ascending; this is not checked. Both
// slices are copied, so the caller keeps ownership of its arrays.
func New(xs, ys []float64) (*Spline, error) {
	n := len(xs)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if len(ys) != n {
		return nil, ErrLengthMismatch
	}
	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		y2: array.Zeros[float64](n),
	}
	s.solveSecondDerivatives()
	return s, nil
}

// solveSecondDerivatives fills s.y2 by the tridiagonal (Thomas)
// recurrence with natural boundaries, y2[0] = y2[n-1] = 0.
func (s *Spline) solveSecondDerivatives() {
	n := len(s.xs)
	u := array.Zeros[float64](n)
	for i := 1; i < n-1; i++ {
		sig := (s.xs[i] - s.xs[i-1]) / (s.xs[i+1] - s.xs[i-1])
		p := sig*s.y2[i-1] + 2
		s.y2[i] = (sig - 1) / p
		u[i] = (s.ys[i+1]-s.ys[i])/(s.xs[i+1]-s.xs[i]) - (s.ys[i]-s.ys[i-1])/(s.xs[i]-s.xs[i-1])
		u[i] = (6*u[i]/(s.xs[i+1]-s.xs[i-1]) - sig*u[i-1]) / p
	}
	for i := n - 2; i >= 0; i-- {
		s.y2[i] = s.y2[i]*s.y2[i+1] + u[i]
	}
}

// Eval evaluates the spline at x. A non-nil acc caches the segment
// lookup; pass nil for a plain binary search. Use one Accel per
// evaluation stream.
func (s *Spline) Eval(x float64, acc *Accel) float64 {
	var i int
	if acc != nil {
		i = acc.lookup(s.xs, x)
	} else {
		i = search(s.xs, x)
	}
	h := s.xs[i+1] - s.xs[i]
	a := (s.xs[i+1] - x) / h
	b := (x - s.xs[i]) / h
	return a*s.ys[i] + b*s.ys[i+1] + ((a*a*a-a)*s.y2[i]+(b*b*b-b)*s.y2[i+1])*h*h/6
}

// Xs returns the knot abscissas. The slice is owned by the spline.
func (s *Spline) Xs() []float64 { return s.xs }

// Ys returns the sampled ordinates (log10 values for a log-log
// spline). The slice is owned by the spline.
func (s *Spline) Ys() []float64 { return s.ys }

// Len returns the number of knots.
func (s *Spline) Len() int { return len(s.xs) }

// search returns the segment index i with xs[i] <= x < xs[i+1],
// clamped to [0, len(xs)-2].
func search(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	return i
}

// Sample evaluates f at each abscissa and builds a spline through the
// samples. xs must be sorted ascending and hold at least 2 points.
func Sample(f Func, xs []float64) (*Spline, *Accel, error) {
	if len(xs) < 2 {
		return nil, nil, ErrTooFewPoints
	}
	ys := array.Zeros[float64](len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	s, err := New(xs, ys)
	if err != nil {
		return nil, nil, err
	}
	return s, NewAccel(), nil
}

// SampleLog10 builds a log-log spline: log10xs holds the log10 of the
// true sample points, f is evaluated at 10^log10xs[i] and the spline
// interpolates log10(f). Sampling a non-positive value fails with
// ErrNonPositive identifying the offending input and output.
func SampleLog10(f Func, log10xs []float64) (*Spline, *Accel, error) {
	if len(log10xs) < 2 {
		return nil, nil, ErrTooFewPoints
	}
	ys := array.Zeros[float64](len(log10xs))
	for i, lx := range log10xs {
		x := math.Pow(10, lx)
		y := f(x)
		if y <= 0 {
			return nil, nil, fmt.Errorf("spline: f(%e) = %e: %w", x, y, ErrNonPositive)
		}
		ys[i] = math.Log10(y)
	}
	s, err := New(log10xs, ys)
	if err != nil {
		return nil, nil, err
	}
	return s, NewAccel(), nil
}

// MustSample is Sample with the legacy die-on-error behavior.
func MustSample(f Func, xs []float64) (*Spline, *Accel) {
	s, acc, err := Sample(f, xs)
	if err != nil {
		panic(err)
	}
	return s, acc
}

// MustSampleLog10 is SampleLog10 with the legacy die-on-error behavior.
func MustSampleLog10(f Func, log10xs []float64) (*Spline, *Accel) {
	s, acc, err := SampleLog10(f, log10xs)
	if err != nil {
		panic(err)
	}
	return s, acc
}
