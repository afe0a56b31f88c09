package gkernel

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/gkernel/internal/filter"
)

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(2, 3, 0.5, -0.25, 1, RowMajor)
	if err != nil {
		t.Fatalf("NewGeometry() error: %v", err)
	}

	if g.Rows() != 5 || g.Cols() != 7 {
		t.Errorf("size = %dx%d, want 5x7", g.Rows(), g.Cols())
	}
	if r, c := g.Dims(); r != 5 || c != 7 {
		t.Errorf("Dims() = %d, %d, want 5, 7", r, c)
	}
	if g.DX != 0.5 || g.DY != -0.25 || g.Theta != 1 {
		t.Errorf("params = (%v, %v, %v), want (0.5, -0.25, 1)", g.DX, g.DY, g.Theta)
	}
	if len(g.Data()) != 35 {
		t.Errorf("len(Data()) = %d, want 35", len(g.Data()))
	}
	for i, v := range g.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want zero-initialized buffer", i, v)
		}
	}
}

func TestNewGeometryStrides(t *testing.T) {
	tests := []struct {
		layout       Layout
		istep, jstep int
	}{
		{RowMajor, 7, 1},
		{ColumnMajor, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			g, err := NewGeometry(2, 3, 0, 0, 0, tt.layout)
			if err != nil {
				t.Fatalf("NewGeometry() error: %v", err)
			}
			istep, jstep := g.Strides()
			if istep != tt.istep || jstep != tt.jstep {
				t.Errorf("Strides() = %d, %d, want %d, %d", istep, jstep, tt.istep, tt.jstep)
			}
			if g.Layout() != tt.layout {
				t.Errorf("Layout() = %v, want %v", g.Layout(), tt.layout)
			}

			g.Set(3, 5, 42)
			if got := g.Data()[3*istep+5*jstep]; got != 42 {
				t.Errorf("Data()[3*istep+5*jstep] = %v, want 42", got)
			}
			if got := g.At(3, 5); got != 42 {
				t.Errorf("At(3, 5) = %v, want 42", got)
			}
		})
	}
}

func TestNewGeometryInvalid(t *testing.T) {
	tests := []struct {
		name   string
		hw, hh int
		layout Layout
	}{
		{"negative width", -1, 2, RowMajor},
		{"negative height", 2, -1, RowMajor},
		{"unknown layout", 2, 2, Layout(9)},
		{"width too large", filter.MaxHalfSize + 1, 2, RowMajor},
		{"height too large", 2, 4 * filter.MaxHalfSize, RowMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGeometry(tt.hw, tt.hh, 0, 0, 0, tt.layout)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("error = %v, want ErrInvalidGeometry", err)
			}
			if g != nil {
				t.Error("geometry should be nil on error")
			}
		})
	}
}

func TestGeometryZeroHalfSize(t *testing.T) {
	g, err := NewGeometry(0, 0, 0, 0, 0, RowMajor)
	if err != nil {
		t.Fatalf("NewGeometry(0, 0) error: %v", err)
	}
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Errorf("size = %dx%d, want 1x1", g.Rows(), g.Cols())
	}
}

func TestGeometryAtOutOfRange(t *testing.T) {
	g, _ := NewGeometry(1, 1, 0, 0, 0, RowMajor)

	for _, idx := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) did not panic", idx[0], idx[1])
				}
			}()
			g.At(idx[0], idx[1])
		}()
	}
}

func TestGeometryMatrix(t *testing.T) {
	row, _ := NewGeometry(1, 2, 0, 0, 0, RowMajor)
	col, _ := NewGeometry(1, 2, 0, 0, 0, ColumnMajor)
	for i := range 3 {
		for j := range 5 {
			v := float64(10*i + j)
			row.Set(i, j, v)
			col.Set(i, j, v)
		}
	}

	if !mat.Equal(row, col) {
		t.Error("row-major and column-major geometries differ as matrices")
	}

	d := col.Dense()
	if r, c := d.Dims(); r != 3 || c != 5 {
		t.Fatalf("Dense().Dims() = %d, %d, want 3, 5", r, c)
	}
	if !mat.Equal(d, row) {
		t.Error("Dense() does not match the geometry")
	}

	// Dense is a copy.
	d.Set(0, 0, -1)
	if col.At(0, 0) != 0 {
		t.Error("modifying Dense() changed the geometry")
	}

	tr := row.T()
	if r, c := tr.Dims(); r != 5 || c != 3 {
		t.Errorf("T().Dims() = %d, %d, want 5, 3", r, c)
	}
	if tr.At(4, 2) != row.At(2, 4) {
		t.Errorf("T().At(4, 2) = %v, want %v", tr.At(4, 2), row.At(2, 4))
	}
}

func TestLayoutString(t *testing.T) {
	if got := Layout(7).String(); got != "Layout(7)" {
		t.Errorf("Layout(7).String() = %q", got)
	}
}
