package ui

import "fmt"

// Status is the playback readout shown in the overlay.
type Status struct {
	Frame        uint64
	Paused       bool
	Iterations   int
	CrystalCells int
	Scale        float64

	// Hovering is set when the cursor is over a lattice cell.
	Hovering bool
	Row, Col int
}

// String renders the status as a single overlay line.
func (s Status) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  gen %d  x%d/frame  crystal %d  zoom %.2f", state, s.Frame, s.Iterations, s.CrystalCells, s.Scale)
	if s.Hovering {
		line += fmt.Sprintf("  cell %d,%d", s.Row, s.Col)
	}
	return line
}
