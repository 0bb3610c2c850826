package testutil

// SampleFunc evaluates f at each abscissa and returns the ordinates.
func SampleFunc(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Ascending returns the integers 0..n-1 as float64 abscissas.
func Ascending(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
