package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-sci/internal/testutil"
	"github.com/cwbudde/algo-sci/sci/grid"
)

func TestNewErrors(t *testing.T) {
	_, err := New([]float64{0}, []float64{1})
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = New([]float64{0, 1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestKnotReproduction(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	f := func(x float64) float64 { return x + 1 }

	s, acc, err := Sample(f, xs)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())

	for _, x := range xs {
		testutil.RequireNear(t, s.Eval(x, acc), f(x), 1e-12)
		testutil.RequireNear(t, s.Eval(x, nil), f(x), 1e-12)
	}
}

func TestLinearDataStaysLinear(t *testing.T) {
	// A natural cubic through collinear samples is the line itself,
	// including between the knots.
	xs := grid.Linspace(make([]float64, 7), -2, 4)
	s, acc, err := Sample(func(x float64) float64 { return 3*x - 0.5 }, xs)
	require.NoError(t, err)

	for x := -2.0; x <= 4.0; x += 0.1 {
		testutil.RequireNear(t, s.Eval(x, acc), 3*x-0.5, 1e-10)
	}
}

func TestSampleOrdinates(t *testing.T) {
	xs := []float64{0, 1, 2}
	s, _, err := Sample(func(x float64) float64 { return x * x }, xs)
	require.NoError(t, err)

	testutil.RequireSliceNear(t, s.Xs(), xs, 0)
	testutil.RequireSliceNear(t, s.Ys(), []float64{0, 1, 4}, 0)
}

func TestSampleCopiesAbscissas(t *testing.T) {
	xs := []float64{0, 1, 2}
	s, _, err := Sample(func(x float64) float64 { return x }, xs)
	require.NoError(t, err)

	xs[1] = 100
	require.Equal(t, 1.0, s.Xs()[1])
}

func TestLog10RoundTrip(t *testing.T) {
	log10xs := []float64{0, 1, 2, 3}
	f := func(x float64) float64 { return x + 1 }

	s, acc, err := SampleLog10(f, log10xs)
	require.NoError(t, err)

	// At each knot, 10^Eval recovers f evaluated at the true sample
	// point 10^lx.
	for _, lx := range log10xs {
		x := math.Pow(10, lx)
		testutil.RequireNear(t, math.Pow(10, s.Eval(lx, acc)), f(x), 1e-9)
	}

	// The first knot is the identity point of the round trip:
	// f(10^0) = 2, so the stored ordinate is log10(2).
	testutil.RequireNear(t, s.Ys()[0], math.Log10(2), 1e-12)
}

func TestLog10RejectsNonPositive(t *testing.T) {
	log10xs := []float64{0, 1, 2}

	_, _, err := SampleLog10(func(x float64) float64 { return x - 10 }, log10xs)
	require.ErrorIs(t, err, ErrNonPositive)

	_, _, err = SampleLog10(func(float64) float64 { return 0 }, log10xs)
	require.ErrorIs(t, err, ErrNonPositive)

	// The message identifies the offending sample.
	require.ErrorContains(t, err, "f(1.000000e+00)")
}

func TestMustVariants(t *testing.T) {
	require.Panics(t, func() {
		MustSampleLog10(func(float64) float64 { return -1 }, []float64{0, 1})
	})
	require.Panics(t, func() {
		MustSample(func(x float64) float64 { return x }, []float64{0})
	})

	s, acc := MustSample(func(x float64) float64 { return x }, []float64{0, 1, 2})
	require.NotNil(t, s)
	require.NotNil(t, acc)
}

func TestAgreesWithNaturalCubicOracle(t *testing.T) {
	// The natural cubic interpolant is unique, so an independent
	// implementation fitted to the same samples must agree everywhere.
	xs := grid.Linspace(make([]float64, 20), 0, 2*math.Pi)
	f := math.Sin

	s, acc, err := Sample(f, xs)
	require.NoError(t, err)

	var oracle interp.NaturalCubic
	require.NoError(t, oracle.Fit(xs, testutil.SampleFunc(f, xs)))

	for x := 0.0; x <= 2*math.Pi; x += 0.01 {
		testutil.RequireNear(t, s.Eval(x, acc), oracle.Predict(x), 1e-8)
	}
}

func TestAccelMatchesPlainSearch(t *testing.T) {
	xs := grid.Linspace(make([]float64, 10), 0, 9)
	s, _, err := Sample(func(x float64) float64 { return math.Exp(-x) }, xs)
	require.NoError(t, err)

	acc := NewAccel()
	// Forward sweep, backward sweep, then random-ish jumps.
	probe := []float64{0, 0.5, 1.7, 3.2, 3.3, 8.9, 9, 7.5, 2.1, 0.4, 6.6, 6.7, 0.1}
	for _, x := range probe {
		testutil.RequireNear(t, s.Eval(x, acc), s.Eval(x, nil), 1e-12)
	}

	acc.Reset()
	testutil.RequireNear(t, s.Eval(4.5, acc), s.Eval(4.5, nil), 1e-12)
}

func TestTwoPointSplineIsLinear(t *testing.T) {
	s, acc, err := Sample(func(x float64) float64 { return 2 * x }, []float64{0, 1})
	require.NoError(t, err)

	testutil.RequireNear(t, s.Eval(0.25, acc), 0.5, 1e-12)
	testutil.RequireNear(t, s.Eval(0.75, acc), 1.5, 1e-12)
}
