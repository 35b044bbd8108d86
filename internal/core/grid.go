package core

import "fmt"

// MaxGridSide is the largest lattice side any grid accepts.
const MaxGridSide = 2048

// CheckSide reports ErrInvalidDimension for sides outside [1, MaxGridSide].
func CheckSide(s int) error {
	if s <= 0 || s > MaxGridSide {
		return fmt.Errorf("grid side %d outside [1, %d]: %w", s, MaxGridSide, ErrInvalidDimension)
	}
	return nil
}

// FloatGrid stores an S×S lattice of float64 values in row-major order.
type FloatGrid struct {
	S    int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with side length s.
func NewFloatGrid(s int) (*FloatGrid, error) {
	if err := CheckSide(s); err != nil {
		return nil, fmt.Errorf("float grid: %w", err)
	}
	return &FloatGrid{S: s, data: make([]float64, s*s)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *FloatGrid) Index(row, col int) int { return row*g.S + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(row, col int) (int, int) {
	return wrap(row, g.S), wrap(col, g.S)
}

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom copies src into g. Both grids must share a side length.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	copy(g.data, src.data)
}

// ByteGrid stores an S×S lattice of byte-sized flags in row-major order.
type ByteGrid struct {
	S    int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with side length s.
func NewByteGrid(s int) (*ByteGrid, error) {
	if err := CheckSide(s); err != nil {
		return nil, fmt.Errorf("byte grid: %w", err)
	}
	return &ByteGrid{S: s, data: make([]uint8, s*s)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.S + col }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom copies src into g. Both grids must share a side length.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	copy(g.data, src.data)
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
