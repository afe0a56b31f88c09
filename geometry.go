package gkernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/gkernel/internal/filter"
)

// Layout is the memory order of a Geometry buffer.
type Layout uint8

const (
	// RowMajor stores consecutive j for a fixed i contiguously.
	RowMajor Layout = iota

	// ColumnMajor stores consecutive i for a fixed j contiguously.
	ColumnMajor
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Geometry is the rectangular buffer backing a kernel, addressed by
// (i, j) offsets from the top-left corner through row and column strides.
//
// Index i runs along x and j along y. DX, DY and Theta record the
// parameters of the last evaluation and are owned by the kernel.
//
// Geometry implements mat.Matrix.
type Geometry struct {
	DX, DY float64
	Theta  float64

	rows, cols   int
	istep, jstep int
	layout       Layout
	data         []float64
}

var _ mat.Matrix = (*Geometry)(nil)

// NewGeometry allocates a zeroed buffer of (2*halfWidth+1) x (2*halfHeight+1)
// taps. Half sizes must be in [0, filter.MaxHalfSize].
func NewGeometry(halfWidth, halfHeight int, dx, dy, theta float64, layout Layout) (*Geometry, error) {
	if halfWidth < 0 || halfHeight < 0 || halfWidth > filter.MaxHalfSize || halfHeight > filter.MaxHalfSize {
		return nil, fmt.Errorf("%w: half size %dx%d", ErrInvalidGeometry, halfWidth, halfHeight)
	}

	rows := 2*halfWidth + 1
	cols := 2*halfHeight + 1

	g := &Geometry{
		DX:     dx,
		DY:     dy,
		Theta:  theta,
		rows:   rows,
		cols:   cols,
		layout: layout,
		data:   make([]float64, rows*cols),
	}

	switch layout {
	case RowMajor:
		g.istep, g.jstep = cols, 1
	case ColumnMajor:
		g.istep, g.jstep = 1, rows
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, layout)
	}

	return g, nil
}

// Rows returns the extent along i (x).
func (g *Geometry) Rows() int { return g.rows }

// Cols returns the extent along j (y).
func (g *Geometry) Cols() int { return g.cols }

// Strides returns the distance in the backing slice between neighbours
// along i and along j.
func (g *Geometry) Strides() (istep, jstep int) { return g.istep, g.jstep }

// Layout returns the memory order of the buffer.
func (g *Geometry) Layout() Layout { return g.layout }

// Data returns the backing slice. Element (i, j) lives at
// i*istep + j*jstep.
func (g *Geometry) Data() []float64 { return g.data }

// Dims returns the buffer dimensions. It is part of mat.Matrix.
func (g *Geometry) Dims() (r, c int) { return g.rows, g.cols }

// At returns element (i, j). It panics if the index is out of range.
func (g *Geometry) At(i, j int) float64 {
	g.check(i, j)
	return g.data[i*g.istep+j*g.jstep]
}

// Set stores v at element (i, j). It panics if the index is out of range.
func (g *Geometry) Set(i, j int, v float64) {
	g.check(i, j)
	g.data[i*g.istep+j*g.jstep] = v
}

// T returns the implicit transpose. It is part of mat.Matrix.
func (g *Geometry) T() mat.Matrix {
	return mat.Transpose{Matrix: g}
}

// Dense returns a row-major copy of the buffer.
func (g *Geometry) Dense() *mat.Dense {
	d := mat.NewDense(g.rows, g.cols, nil)
	d.Copy(g)
	return d
}

func (g *Geometry) check(i, j int) {
	if uint(i) >= uint(g.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(g.cols) {
		panic(mat.ErrColAccess)
	}
}

func (g *Geometry) clone() *Geometry {
	c := *g
	c.data = append([]float64(nil), g.data...)
	return &c
}
