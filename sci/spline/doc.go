// Package spline builds natural cubic interpolants over samples of a
// caller-supplied function.
//
// Two builders are provided:
//
//   - [Sample]:      interpolates f directly over the given abscissas
//   - [SampleLog10]: interpolates log10(f) over log10 abscissas, for
//     functions spanning many orders of magnitude; every sampled
//     value must be positive
//
// Both return the interpolant together with a fresh [Accel], a mutable
// segment-lookup cache that amortizes sequential evaluations. One
// Accel serves exactly one evaluation stream; concurrent streams over
// the same spline each need their own via [NewAccel].
package spline
