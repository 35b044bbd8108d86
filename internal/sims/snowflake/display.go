package snowflake

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Shade writes one intensity per cell: frozen cells map to (0, 1] by the
// square root of their share of the largest crystal mass, vapour cells map
// to [-1, 0] by the 1.5 power of their share of the densest vapour. The
// curves keep the background dark and the crystal bright.
func (m *Model) Shade(dst []float64) {
	d := m.vapour.Cells()
	c := m.crystal.Cells()
	frozen := m.frozen.Cells()
	n := min(len(dst), len(d))
	maxC := floats.Max(c)
	maxD := floats.Max(d)
	for i := 0; i < n; i++ {
		v := 0.0
		if frozen[i] != 0 {
			if maxC > 0 {
				v = math.Sqrt(math.Max(c[i]/maxC, 0))
			}
		} else if maxD > 0 {
			v = -math.Pow(math.Max(d[i]/maxD, 0), 1.5)
		}
		dst[i] = clampShade(v)
	}
}

func clampShade(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

// Stats summarises the mass balance of the field.
type Stats struct {
	CrystalCells  int
	BoundaryCells int
	Extent        int // largest hex distance from the seed to a frozen cell
	VapourMass    float64
	BoundaryMass  float64
	CrystalMass   float64
}

// TotalMass returns the sum of all three mass channels.
func (s Stats) TotalMass() float64 {
	return s.VapourMass + s.BoundaryMass + s.CrystalMass
}

// Stats computes the current mass balance.
func (m *Model) Stats() Stats {
	st := Stats{
		CrystalCells: m.frozen.Count(),
		VapourMass:   floats.Sum(m.vapour.Cells()),
		BoundaryMass: floats.Sum(m.boundary.Cells()),
		CrystalMass:  floats.Sum(m.crystal.Cells()),
	}
	centre := m.s / 2
	frozen := m.frozen.Cells()
	edge := m.edge.Cells()
	for row := 0; row < m.s; row++ {
		for col := 0; col < m.s; col++ {
			i := row*m.s + col
			if frozen[i] == 0 {
				if edge[i] != 0 {
					st.BoundaryCells++
				}
				continue
			}
			if dist := hexDistance(row-centre, col-centre); dist > st.Extent {
				st.Extent = dist
			}
		}
	}
	return st
}

// hexDistance measures lattice steps for an offset under the neighbour set
// used by the model.
func hexDistance(dr, dc int) int {
	a, b, c := abs(dr), abs(dc), abs(dr-dc)
	return max(a, b, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
