package snowflake

import (
	"errors"
	"math"
	"slices"
	"testing"

	"hexflake/internal/core"
)

func newTestModel(t *testing.T, size int, p Params) *Model {
	t.Helper()
	m, err := NewWithConfig(Config{Size: size, Params: p})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return m
}

func lowBetaParams(t *testing.T) Params {
	t.Helper()
	p, err := PresetAt(1)
	if err != nil {
		t.Fatal(err)
	}
	return p.Config.Params
}

func TestNewRejectsSizeOutOfRange(t *testing.T) {
	for _, s := range []int{0, -5, core.MaxGridSide + 1, 1 << 30} {
		if _, err := New(s); !errors.Is(err, core.ErrInvalidDimension) {
			t.Fatalf("New(%d) err = %v, want ErrInvalidDimension", s, err)
		}
	}
}

func TestNeighborsWrap(t *testing.T) {
	const s = 5
	m := newTestModel(t, s, DefaultConfig().Params)
	idx := func(r, c int) int { return r*s + c }
	tests := []struct {
		name     string
		row, col int
		want     [6]int
	}{
		{"interior", 2, 2, [6]int{idx(1, 1), idx(1, 2), idx(2, 1), idx(2, 3), idx(3, 2), idx(3, 3)}},
		{"top-left", 0, 0, [6]int{idx(4, 4), idx(4, 0), idx(0, 4), idx(0, 1), idx(1, 0), idx(1, 1)}},
		{"bottom-right", 4, 4, [6]int{idx(3, 3), idx(3, 4), idx(4, 3), idx(4, 0), idx(0, 4), idx(0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.neighbors(tt.row, tt.col); got != tt.want {
				t.Fatalf("neighbors(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestSeedPattern(t *testing.T) {
	const size = 9
	m := newTestModel(t, size, DefaultConfig().Params)
	centre := size/2*size + size/2

	frozen := m.Frozen()
	if frozen[centre] != 1 {
		t.Fatal("centre cell must start frozen")
	}
	if got := m.CrystalMass()[centre]; got != 1 {
		t.Fatalf("centre crystal mass = %v, want 1", got)
	}
	if got := m.Vapour()[centre]; got != 0 {
		t.Fatalf("centre vapour = %v, want 0", got)
	}

	want := map[int]bool{}
	for _, off := range [][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, 0}, {1, 1}} {
		want[(size/2+off[0])*size+size/2+off[1]] = true
	}
	for i, e := range m.Edge() {
		if (e != 0) != want[i] {
			t.Fatalf("cell %d edge=%d, want %v", i, e, want[i])
		}
	}
	for i, v := range m.Vapour() {
		if i != centre && v != 0.635 {
			t.Fatalf("cell %d vapour = %v, want rho", i, v)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	m := newTestModel(t, 24, DefaultConfig().Params)
	initialVapour := append([]float64(nil), m.Vapour()...)
	initialFrozen := append([]uint8(nil), m.Frozen()...)
	initialEdge := append([]uint8(nil), m.Edge()...)

	for i := 0; i < 25; i++ {
		m.Step()
	}
	m.Reset()
	if !slices.Equal(initialVapour, m.Vapour()) {
		t.Fatal("Reset not deterministic for vapour")
	}
	if !slices.Equal(initialFrozen, m.Frozen()) {
		t.Fatal("Reset not deterministic for frozen flags")
	}
	if !slices.Equal(initialEdge, m.Edge()) {
		t.Fatal("Reset not deterministic for edge flags")
	}

	m.Reset()
	if !slices.Equal(initialVapour, m.Vapour()) {
		t.Fatal("second Reset diverged")
	}
	for _, v := range m.BoundaryMass() {
		if v != 0 {
			t.Fatal("Reset must clear boundary mass")
		}
	}
}

func TestStepBitReproducible(t *testing.T) {
	a := newTestModel(t, 33, DefaultConfig().Params)
	b := newTestModel(t, 33, DefaultConfig().Params)
	for i := 0; i < 60; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Vapour(), b.Vapour()) ||
		!slices.Equal(a.BoundaryMass(), b.BoundaryMass()) ||
		!slices.Equal(a.CrystalMass(), b.CrystalMass()) ||
		!slices.Equal(a.Frozen(), b.Frozen()) {
		t.Fatal("identical models diverged")
	}
}

func TestFirstGenerationAttachesRingAtLowBeta(t *testing.T) {
	m := newTestModel(t, 21, lowBetaParams(t))
	m.Step()

	st := m.Stats()
	if st.CrystalCells != 7 {
		t.Fatalf("crystal cells = %d, want 7", st.CrystalCells)
	}
	if st.Extent != 1 {
		t.Fatalf("extent = %d, want 1", st.Extent)
	}
	if st.BoundaryCells != 12 {
		t.Fatalf("boundary cells = %d, want 12", st.BoundaryCells)
	}
}

func TestHighBetaHoldsCrystalOnFirstGeneration(t *testing.T) {
	m := newTestModel(t, 21, DefaultConfig().Params)
	m.Step()
	if got := m.Stats().CrystalCells; got != 1 {
		t.Fatalf("crystal cells = %d, want 1 while boundary mass is below beta", got)
	}
	var b float64
	for _, v := range m.BoundaryMass() {
		b = math.Max(b, v)
	}
	if b <= 0 {
		t.Fatal("boundary cells should have accumulated mass")
	}
}

func TestMassConserved(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"defaults", DefaultConfig().Params},
		{"low beta", lowBetaParams(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 31, tt.p)
			before := m.Stats().TotalMass()
			for i := 0; i < 120; i++ {
				m.Step()
			}
			after := m.Stats().TotalMass()
			if math.Abs(after-before) > 1e-9*before {
				t.Fatalf("total mass drifted from %.12f to %.12f", before, after)
			}
		})
	}
}

func TestValuesStayFinite(t *testing.T) {
	p := DefaultConfig().Params
	p.Rho = 2
	p.Mu = 1
	p.Gamma = 1
	m := newTestModel(t, 17, p)
	for i := 0; i < 200; i++ {
		m.Step()
	}
	for _, ch := range [][]float64{m.Vapour(), m.BoundaryMass(), m.CrystalMass()} {
		for i, v := range ch {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("cell %d holds %v", i, v)
			}
		}
	}
}

func TestShadeRange(t *testing.T) {
	m := newTestModel(t, 15, lowBetaParams(t))
	for i := 0; i < 10; i++ {
		m.Step()
	}
	dst := make([]float64, 15*15)
	m.Shade(dst)
	centre := 7*15 + 7
	if dst[centre] <= 0 {
		t.Fatalf("crystal shade = %v, want > 0", dst[centre])
	}
	for i, v := range dst {
		if v < -1 || v > 1 || math.IsNaN(v) {
			t.Fatalf("shade[%d] = %v out of range", i, v)
		}
	}
}

func TestShadeWritesAtMostLenDst(t *testing.T) {
	m := newTestModel(t, 9, DefaultConfig().Params)
	full := make([]float64, 81)
	m.Shade(full)
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"short", 40},
		{"long", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, tt.n)
			for i := range dst {
				dst[i] = 7
			}
			m.Shade(dst)
			for i, v := range dst {
				want := 7.0
				if i < len(full) {
					want = full[i]
				}
				if v != want {
					t.Fatalf("dst[%d] = %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestShadeUniformVapourIsDarkest(t *testing.T) {
	m := newTestModel(t, 9, DefaultConfig().Params)
	dst := make([]float64, 81)
	m.Shade(dst)
	if dst[0] != -1 {
		t.Fatalf("far vapour shade = %v, want -1", dst[0])
	}
	if dst[4*9+4] != 1 {
		t.Fatalf("seed shade = %v, want 1", dst[4*9+4])
	}
}

func TestSigmaTextureDeterministic(t *testing.T) {
	p := DefaultConfig().Params
	p.Sigma = 0.5
	a := newTestModel(t, 32, p)
	b := newTestModel(t, 32, p)
	if !slices.Equal(a.Vapour(), b.Vapour()) {
		t.Fatal("textured seeds differ between instances")
	}
	uniform := true
	first := a.Vapour()[0]
	for _, v := range a.Vapour() {
		if v < 0 {
			t.Fatalf("textured vapour negative: %v", v)
		}
		if v != first && v != 0 {
			uniform = false
		}
	}
	if uniform {
		t.Fatal("sigma > 0 should texture the vapour")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	m := newTestModel(t, 5, DefaultConfig().Params)
	if !m.SetFloatParameter(KeyBeta, 50) {
		t.Fatal("beta should be adjustable")
	}
	if got := m.Params().Beta; got != 5 {
		t.Fatalf("beta = %v, want clamp to 5", got)
	}
	if !m.SetFloatParameter(KeyAlpha, -1) {
		t.Fatal("alpha should be adjustable")
	}
	if got := m.Params().Alpha; got != 0 {
		t.Fatalf("alpha = %v, want clamp to 0", got)
	}
	if m.SetFloatParameter("zeta", 1) {
		t.Fatal("unknown key should be rejected")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		KeySize:  "64",
		KeyAlpha: "9",
		KeyMu:    "0.25",
		KeyTheta: "not-a-number",
	})
	if cfg.Size != 64 {
		t.Fatalf("size = %d, want 64", cfg.Size)
	}
	if cfg.Params.Alpha != 1 {
		t.Fatalf("alpha = %v, want clamp to 1", cfg.Params.Alpha)
	}
	if cfg.Params.Mu != 0.25 {
		t.Fatalf("mu = %v, want 0.25", cfg.Params.Mu)
	}
	if cfg.Params.Theta != DefaultConfig().Params.Theta {
		t.Fatalf("theta = %v, want default", cfg.Params.Theta)
	}
	if got := FromMap(map[string]string{KeySize: "-3"}); got.Size != -3 {
		t.Fatalf("size -3 = %d, want it passed through", got.Size)
	}
	if got := FromMap(map[string]string{KeySize: "x"}); got.Size != 0 {
		t.Fatalf("unparsable size = %d, want 0", got.Size)
	}
	if got := FromMap(cfg.ToMap()); got != cfg {
		t.Fatalf("ToMap/FromMap = %+v, want %+v", got, cfg)
	}
}

func TestPresetsWithinBounds(t *testing.T) {
	if PresetCount() != 8 {
		t.Fatalf("PresetCount = %d, want 8", PresetCount())
	}
	for i, p := range Presets() {
		if p.Name == "" || p.Description == "" {
			t.Errorf("preset %d missing name or description", i)
		}
		if p.Config.Params.Clamped() != p.Config.Params {
			t.Errorf("preset %q has coefficients outside bounds", p.Name)
		}
		if p.Config.Size != 512 {
			t.Errorf("preset %q size = %d, want 512", p.Name, p.Config.Size)
		}
	}
	for _, i := range []int{-1, PresetCount()} {
		if _, err := PresetAt(i); !errors.Is(err, core.ErrInvalidIndex) {
			t.Fatalf("PresetAt(%d) err = %v, want ErrInvalidIndex", i, err)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	f, err := core.Lookup(Name)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := f(map[string]string{KeySize: "12"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 12, H: 12}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	for _, size := range []string{"-3", "0", "abc", "", "99999"} {
		if _, err := f(map[string]string{KeySize: size}); !errors.Is(err, core.ErrInvalidDimension) {
			t.Fatalf("size %q err = %v, want ErrInvalidDimension", size, err)
		}
	}
	if sim, err := f(map[string]string{KeyAlpha: "0.5"}); err != nil || sim.Size().W != DefaultConfig().Size {
		t.Fatalf("missing size should use the default, got %v", err)
	}
}

func TestHexDistance(t *testing.T) {
	tests := []struct {
		dr, dc, want int
	}{
		{0, 0, 0},
		{-1, -1, 1},
		{1, 1, 1},
		{0, 1, 1},
		{1, -1, 2},
		{3, 1, 3},
		{-2, 2, 4},
	}
	for _, tt := range tests {
		if got := hexDistance(tt.dr, tt.dc); got != tt.want {
			t.Errorf("hexDistance(%d, %d) = %d, want %d", tt.dr, tt.dc, got, tt.want)
		}
	}
}
