package spline

// Accel caches the most recent segment lookup so that runs of nearby
// evaluations step to a neighboring segment instead of repeating the
// binary search. It is mutable cache state: share one Accel per
// evaluation stream, never across goroutines without external locking.
type Accel struct {
	cache int
}

// NewAccel returns a fresh accelerator starting at the first segment.
func NewAccel() *Accel { return &Accel{} }

// Reset clears the cached segment, e.g. before reusing the Accel with
// a different spline.
func (a *Accel) Reset() { a.cache = 0 }

func (a *Accel) lookup(xs []float64, x float64) int {
	i := a.cache
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	switch {
	case x < xs[i] && i > 0:
		if x >= xs[i-1] {
			i--
		} else {
			i = search(xs, x)
		}
	case x >= xs[i+1] && i < len(xs)-2:
		if x < xs[i+2] {
			i++
		} else {
			i = search(xs, x)
		}
	}
	a.cache = i
	return i
}
