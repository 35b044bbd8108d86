// Package snowflake implements the Gravner–Griffeath crystal growth model on
// a hexagonal lattice.
//
// The lattice is stored as an S×S array. Cell (r, c) touches the six cells
// at offsets (-1,-1), (-1,0), (0,-1), (0,1), (1,0) and (1,1); both axes wrap
// around. Every cell carries vapour (diffusive) mass, boundary mass, crystal
// mass and two flags: whether it is frozen into the crystal and whether it
// touches the crystal.
package snowflake

import (
	"fmt"
	"math"

	"hexflake/internal/core"
)

// Name is the registry key of the snowflake rule.
const Name = "snowflake"

const kernelWeight = 1.0 / 7.0

// Model owns the field buffers and applies the update rule.
type Model struct {
	cfg Config
	s   int

	// prev/next hold the wrapped row or column index on either side.
	prev []int
	next []int

	vapour     *core.FloatGrid
	vapourNext *core.FloatGrid
	boundary   *core.FloatGrid
	crystal    *core.FloatGrid

	frozen     *core.ByteGrid
	frozenNext *core.ByteGrid
	edge       *core.ByteGrid
	edgeNext   *core.ByteGrid
}

// New returns a snowflake model of side s using the default coefficients.
func New(s int) (*Model, error) {
	cfg := DefaultConfig()
	cfg.Size = s
	return NewWithConfig(cfg)
}

// NewWithConfig allocates a model and seeds it. Coefficients outside their
// bounds are clamped.
func NewWithConfig(cfg Config) (*Model, error) {
	s := cfg.Size
	if err := core.CheckSide(s); err != nil {
		return nil, fmt.Errorf("snowflake: %w", err)
	}
	cfg.Params = cfg.Params.Clamped()
	m := &Model{cfg: cfg, s: s}

	channels := []**core.FloatGrid{&m.vapour, &m.vapourNext, &m.boundary, &m.crystal}
	for _, dst := range channels {
		g, err := core.NewFloatGrid(s)
		if err != nil {
			return nil, err
		}
		*dst = g
	}
	flags := []**core.ByteGrid{&m.frozen, &m.frozenNext, &m.edge, &m.edgeNext}
	for _, dst := range flags {
		g, err := core.NewByteGrid(s)
		if err != nil {
			return nil, err
		}
		*dst = g
	}
	m.prev = make([]int, s)
	m.next = make([]int, s)
	for i := 0; i < s; i++ {
		m.prev[i], m.next[i] = m.vapour.Wrap(i-1, i+1)
	}
	m.Reset()
	return m, nil
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return Name }

// Size reports the grid dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.s, H: m.s} }

// Vapour exposes the current diffusive mass channel.
func (m *Model) Vapour() []float64 { return m.vapour.Cells() }

// BoundaryMass exposes the quasi-liquid mass channel.
func (m *Model) BoundaryMass() []float64 { return m.boundary.Cells() }

// CrystalMass exposes the crystal mass channel.
func (m *Model) CrystalMass() []float64 { return m.crystal.Cells() }

// Frozen exposes the crystal membership flags.
func (m *Model) Frozen() []uint8 { return m.frozen.Cells() }

// Edge exposes the boundary flags.
func (m *Model) Edge() []uint8 { return m.edge.Cells() }

// Reset restores the deterministic seed pattern: uniform vapour at density
// rho (optionally textured by sigma) and a single frozen cell in the centre
// whose six neighbours form the initial boundary.
func (m *Model) Reset() {
	m.fillVapour()
	m.vapourNext.Fill(0)
	m.boundary.Fill(0)
	m.crystal.Fill(0)
	m.frozen.Clear()
	m.frozenNext.Clear()
	m.edge.Clear()
	m.edgeNext.Clear()

	centre := m.s / 2
	idx := m.frozen.Index(centre, centre)
	m.frozen.Cells()[idx] = 1
	m.crystal.Cells()[idx] = 1
	m.vapour.Cells()[idx] = 0
	edge := m.edge.Cells()
	for _, n := range m.neighbors(centre, centre) {
		edge[n] = 1
	}
}

// Step advances the model by one generation: diffusion, freezing,
// attachment and melting, in that order.
func (m *Model) Step() {
	m.diffuse()
	m.freeze()
	m.attach()
	m.melt()
}

func (m *Model) neighbors(row, col int) [6]int {
	up := m.prev[row] * m.s
	mid := row * m.s
	down := m.next[row] * m.s
	left, right := m.prev[col], m.next[col]
	return [6]int{up + left, up + col, mid + left, mid + right, down + col, down + right}
}

// diffuse averages vapour over each cell and its six neighbours. Frozen
// neighbours reflect: they contribute the centre cell's own vapour.
func (m *Model) diffuse() {
	d := m.vapour.Cells()
	out := m.vapourNext.Cells()
	frozen := m.frozen.Cells()
	for row := 0; row < m.s; row++ {
		for col := 0; col < m.s; col++ {
			i := row*m.s + col
			if frozen[i] != 0 {
				out[i] = 0
				continue
			}
			sum := d[i]
			for _, n := range m.neighbors(row, col) {
				if frozen[n] != 0 {
					sum += d[i]
				} else {
					sum += d[n]
				}
			}
			out[i] = kernelWeight * sum
		}
	}
	m.vapour, m.vapourNext = m.vapourNext, m.vapour
}

// freeze converts all vapour at boundary cells: a kappa share goes to
// crystal mass, the rest to boundary mass.
func (m *Model) freeze() {
	kappa := m.cfg.Params.Kappa
	d := m.vapour.Cells()
	b := m.boundary.Cells()
	c := m.crystal.Cells()
	frozen := m.frozen.Cells()
	edge := m.edge.Cells()
	for i := range d {
		if frozen[i] != 0 {
			d[i] = 0
			continue
		}
		if edge[i] == 0 {
			continue
		}
		c[i] += kappa * d[i]
		b[i] += (1 - kappa) * d[i]
		d[i] = 0
	}
}

// attach decides which boundary cells join the crystal. Decisions read the
// previous generation's flags and write the next generation's.
func (m *Model) attach() {
	p := m.cfg.Params
	d := m.vapour.Cells()
	b := m.boundary.Cells()
	c := m.crystal.Cells()
	frozen := m.frozen.Cells()
	m.frozenNext.CopyFrom(m.frozen)
	m.edgeNext.CopyFrom(m.edge)
	frozenNext := m.frozenNext.Cells()
	edgeNext := m.edgeNext.Cells()

	for row := 0; row < m.s; row++ {
		for col := 0; col < m.s; col++ {
			i := row*m.s + col
			if frozen[i] != 0 {
				continue
			}
			nbrs := m.neighbors(row, col)
			attached := 0
			for _, n := range nbrs {
				if frozen[n] != 0 {
					attached++
				}
			}
			if attached == 0 {
				continue
			}

			join := false
			switch {
			case attached <= 2:
				join = b[i] >= p.Beta
			case attached == 3:
				if b[i] >= 1 {
					join = true
					break
				}
				local := d[i]
				for _, n := range nbrs {
					if frozen[n] == 0 {
						local += d[n]
					}
				}
				join = local < p.Theta && b[i] >= p.Alpha
			default:
				join = true
			}
			if !join {
				continue
			}

			frozenNext[i] = 1
			c[i] += b[i]
			b[i] = 0
			for _, n := range nbrs {
				if frozen[n] == 0 {
					edgeNext[n] = 1
				}
			}
		}
	}
	m.frozen, m.frozenNext = m.frozenNext, m.frozen
	m.edge, m.edgeNext = m.edgeNext, m.edge
}

// melt returns a mu share of boundary mass and a gamma share of crystal mass
// to vapour at boundary cells, then scrubs non-finite values.
func (m *Model) melt() {
	mu, gamma := m.cfg.Params.Mu, m.cfg.Params.Gamma
	d := m.vapour.Cells()
	b := m.boundary.Cells()
	c := m.crystal.Cells()
	frozen := m.frozen.Cells()
	edge := m.edge.Cells()
	for i := range d {
		if edge[i] != 0 && frozen[i] == 0 {
			mb := mu * b[i]
			mc := gamma * c[i]
			b[i] -= mb
			c[i] -= mc
			d[i] += mb + mc
		}
		d[i] = finite(d[i])
		b[i] = finite(b[i])
		c[i] = finite(c[i])
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		m, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}
