// Package render turns simulation fields into RGBA frames.
//
// The Mapper projects the S×S hexagonal lattice onto a square window: every
// pixel takes the colour of the nearest hexagon centre. The pixel-to-cell
// table is cached and only rebuilt when the window size, grid size or
// drawing scale changes.
package render

import (
	"fmt"
	"math"

	"hexflake/internal/core"
)

// Drawing scale limits.
const (
	MinScale = 0.5
	MaxScale = 100.0
)

// MaxWindowSize is the largest frame side length in pixels.
const MaxWindowSize = 4096

func checkWindow(px int) error {
	if px <= 0 || px > MaxWindowSize {
		return fmt.Errorf("window size %d outside [1, %d]: %w", px, MaxWindowSize, core.ErrInvalidDimension)
	}
	return nil
}

var sqrt3 = math.Sqrt(3)

// Frame is a render-ready RGBA8 image. Pix is owned by the receiver.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// Mapper converts field shades into frames.
type Mapper struct {
	window  int
	grid    int
	scale   float64
	palette *Palette

	cellOf []int32
	shades []float64
	dirty  bool
}

// NewMapper returns a mapper for a window of px pixels showing a grid of side
// gridSize.
func NewMapper(px, gridSize int) (*Mapper, error) {
	if err := checkWindow(px); err != nil {
		return nil, err
	}
	if err := core.CheckSide(gridSize); err != nil {
		return nil, err
	}
	return &Mapper{
		window:  px,
		grid:    gridSize,
		scale:   1,
		palette: &DefaultPalette,
		dirty:   true,
	}, nil
}

// WindowSize returns the frame side length in pixels.
func (m *Mapper) WindowSize() int { return m.window }

// GridSize returns the lattice side the mapper projects.
func (m *Mapper) GridSize() int { return m.grid }

// Scale returns the drawing scale.
func (m *Mapper) Scale() float64 { return m.scale }

// SetWindowSize changes the frame side length. Sizes outside
// [1, MaxWindowSize] fail and keep the previous size.
func (m *Mapper) SetWindowSize(px int) error {
	if err := checkWindow(px); err != nil {
		return err
	}
	if px != m.window {
		m.window = px
		m.dirty = true
	}
	return nil
}

// SetGridSize changes the projected lattice side.
func (m *Mapper) SetGridSize(s int) error {
	if err := core.CheckSide(s); err != nil {
		return err
	}
	if s != m.grid {
		m.grid = s
		m.dirty = true
	}
	return nil
}

// SetScale clamps and applies the drawing scale, returning the applied value.
func (m *Mapper) SetScale(s float64) float64 {
	if math.IsNaN(s) {
		s = 1
	}
	s = math.Max(MinScale, math.Min(MaxScale, s))
	if s != m.scale {
		m.scale = s
		m.dirty = true
	}
	return m.scale
}

// Render shades sim and paints it into a fresh frame. The sim is only read.
func (m *Mapper) Render(sim core.Sim) Frame {
	size := sim.Size()
	if size.W > 0 && size.W != m.grid {
		_ = m.SetGridSize(size.W)
	}
	n := size.W * size.H
	if cap(m.shades) < n {
		m.shades = make([]float64, n)
	}
	m.shades = m.shades[:n]
	sim.Shade(m.shades)
	return m.Paint(m.shades)
}

// Paint maps row-major shades for the current grid size into a fresh frame.
func (m *Mapper) Paint(shades []float64) Frame {
	m.rebuild()
	frame := Frame{Width: m.window, Height: m.window, Pix: make([]byte, 4*m.window*m.window)}
	fillShadeRGBA(frame.Pix, m.cellOf, shades, m.palette)
	return frame
}

// CellAt returns the lattice cell shown at pixel (x, y), or ok=false for
// background pixels.
func (m *Mapper) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= m.window || y >= m.window {
		return 0, 0, false
	}
	m.rebuild()
	cell := m.cellOf[y*m.window+x]
	if cell < 0 {
		return 0, 0, false
	}
	return int(cell) / m.grid, int(cell) % m.grid, true
}

func (m *Mapper) rebuild() {
	if !m.dirty && len(m.cellOf) == m.window*m.window {
		return
	}
	total := m.window * m.window
	if cap(m.cellOf) < total {
		m.cellOf = make([]int32, total)
	}
	m.cellOf = m.cellOf[:total]

	vert := float64(m.window) / float64(m.grid) * sqrt3 / 2 * m.scale
	horiz := 2 / sqrt3 * vert
	gridMid := float64(m.grid / 2)
	windowMid := float64(m.window / 2)

	for y := 0; y < m.window; y++ {
		for x := 0; x < m.window; x++ {
			row, col := nearestHex(float64(x), float64(y), vert, horiz, gridMid, windowMid)
			idx := int32(-1)
			if row >= 0 && row < m.grid && col >= 0 && col < m.grid {
				idx = int32(row*m.grid + col)
			}
			m.cellOf[y*m.window+x] = idx
		}
	}
	m.dirty = false
}

// nearestHex finds the hexagon centre closest to pixel (x, y) among the four
// lattice points surrounding its fractional coordinates. Rows are shifted by
// half a column per row so the stored neighbour offsets form a hexagon.
func nearestHex(x, y, vert, horiz, gridMid, windowMid float64) (int, int) {
	rowF := gridMid + (y-windowMid)/vert
	colF := gridMid + (x-windowMid)/horiz + (rowF-gridMid)*0.5
	r0 := int(math.Floor(rowF))
	c0 := int(math.Floor(colF))

	bestRow, bestCol := r0, c0
	best := math.Inf(1)
	for dr := 0; dr <= 1; dr++ {
		for dc := 0; dc <= 1; dc++ {
			r, c := r0+dr, c0+dc
			hx := windowMid + (float64(c)-gridMid-(float64(r)-gridMid)*0.5)*horiz
			hy := windowMid + (float64(r)-gridMid)*vert
			dist := (x-hx)*(x-hx) + (y-hy)*(y-hy)
			if dist < best {
				best = dist
				bestRow, bestCol = r, c
			}
		}
	}
	return bestRow, bestCol
}
