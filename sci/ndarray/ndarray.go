// Package ndarray provides multi-dimensional float64 grids backed by a
// single contiguous allocation.
//
// Shape travels with the value, so callers never repeat dimensions at
// release time, and all constructors zero-initialize uniformly.
// The Grid types address elements through computed strides; the Make
// helpers build nested [i][j][k] views over the same kind of contiguous
// block for callers that prefer slice indexing.
package ndarray

// Grid2D is a rows×cols grid stored row-major in one allocation.
type Grid2D struct {
	rows, cols int
	data       []float64
}

// NewGrid2D returns a zeroed rows×cols grid.
func NewGrid2D(rows, cols int) *Grid2D {
	return &Grid2D{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Dims returns the grid shape.
func (g *Grid2D) Dims() (rows, cols int) { return g.rows, g.cols }

// At returns the element at (i, j).
func (g *Grid2D) At(i, j int) float64 { return g.data[i*g.cols+j] }

// Set stores v at (i, j).
func (g *Grid2D) Set(i, j int, v float64) { g.data[i*g.cols+j] = v }

// Row returns the i-th row as a view into the backing array.
func (g *Grid2D) Row(i int) []float64 { return g.data[i*g.cols : (i+1)*g.cols] }

// Data returns the row-major backing array.
func (g *Grid2D) Data() []float64 { return g.data }

// Grid3D is an n1×n2×n3 grid stored in one allocation.
type Grid3D struct {
	n1, n2, n3 int
	data       []float64
}

// NewGrid3D returns a zeroed n1×n2×n3 grid.
func NewGrid3D(n1, n2, n3 int) *Grid3D {
	return &Grid3D{n1: n1, n2: n2, n3: n3, data: make([]float64, n1*n2*n3)}
}

// Dims returns the grid shape.
func (g *Grid3D) Dims() (n1, n2, n3 int) { return g.n1, g.n2, g.n3 }

// At returns the element at (i, j, k).
func (g *Grid3D) At(i, j, k int) float64 { return g.data[(i*g.n2+j)*g.n3+k] }

// Set stores v at (i, j, k).
func (g *Grid3D) Set(i, j, k int, v float64) { g.data[(i*g.n2+j)*g.n3+k] = v }

// Data returns the backing array, fastest index last.
func (g *Grid3D) Data() []float64 { return g.data }

// Grid4D is an n1×n2×n3×n4 grid stored in one allocation.
type Grid4D struct {
	n1, n2, n3, n4 int
	data           []float64
}

// NewGrid4D returns a zeroed n1×n2×n3×n4 grid.
func NewGrid4D(n1, n2, n3, n4 int) *Grid4D {
	return &Grid4D{n1: n1, n2: n2, n3: n3, n4: n4, data: make([]float64, n1*n2*n3*n4)}
}

// Dims returns the grid shape.
func (g *Grid4D) Dims() (n1, n2, n3, n4 int) { return g.n1, g.n2, g.n3, g.n4 }

// At returns the element at (i, j, k, l).
func (g *Grid4D) At(i, j, k, l int) float64 {
	return g.data[((i*g.n2+j)*g.n3+k)*g.n4+l]
}

// Set stores v at (i, j, k, l).
func (g *Grid4D) Set(i, j, k, l int, v float64) {
	g.data[((i*g.n2+j)*g.n3+k)*g.n4+l] = v
}

// Data returns the backing array, fastest index last.
func (g *Grid4D) Data() []float64 { return g.data }

// Make2D returns a zeroed n×l nested view over one contiguous block.
func Make2D(n, l int) [][]float64 {
	flat := make([]float64, n*l)
	out := make([][]float64, n)
	for i := range out {
		out[i] = flat[:l:l]
		flat = flat[l:]
	}
	return out
}

// Make3D returns a zeroed n×l×m nested view over one contiguous block.
func Make3D(n, l, m int) [][][]float64 {
	flat := make([]float64, n*l*m)
	out := make([][][]float64, n)
	for i := range out {
		out[i] = make([][]float64, l)
		for j := range out[i] {
			out[i][j] = flat[:m:m]
			flat = flat[m:]
		}
	}
	return out
}

// Make3DInt is Make3D for integer grids.
func Make3DInt(n, l, m int) [][][]int {
	flat := make([]int, n*l*m)
	out := make([][][]int, n)
	for i := range out {
		out[i] = make([][]int, l)
		for j := range out[i] {
			out[i][j] = flat[:m:m]
			flat = flat[m:]
		}
	}
	return out
}

// Make4D returns a zeroed n×l×m×p nested view over one contiguous block.
func Make4D(n, l, m, p int) [][][][]float64 {
	flat := make([]float64, n*l*m*p)
	out := make([][][][]float64, n)
	for i := range out {
		out[i] = make([][][]float64, l)
		for j := range out[i] {
			out[i][j] = make([][]float64, m)
			for k := range out[i][j] {
				out[i][j][k] = flat[:p:p]
				flat = flat[p:]
			}
		}
	}
	return out
}
