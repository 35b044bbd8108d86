package ui

import (
	"testing"

	"hexflake/internal/core"
)

type fakeTarget struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeTarget) Name() string                                  { return "fake" }
func (f *fakeTarget) ParameterControls() []core.ParameterControl    { return nil }
func (f *fakeTarget) Parameters() core.ParameterSnapshot            { return core.ParameterSnapshot{} }
func (f *fakeTarget) SetIntParameter(key string, v int) bool        { f.ints[key] = v; return true }
func (f *fakeTarget) SetFloatParameter(key string, v float64) bool { f.floats[key] = v; return true }

func TestControlStepClamps(t *testing.T) {
	target := &fakeTarget{ints: map[string]int{}, floats: map[string]float64{}}
	beta := controlState{control: core.ParameterControl{
		Key: "beta", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true,
	}}
	beta.refresh(core.Parameter{Key: "beta", Value: "4.98"}, true)
	if !beta.apply(target, 1) || target.floats["beta"] != 5 {
		t.Fatalf("beta = %v, want 5", target.floats["beta"])
	}
	if beta.apply(target, 1) {
		t.Fatal("stepping past the maximum should be a no-op")
	}
	if beta.value != "5.00" {
		t.Fatalf("value = %q", beta.value)
	}

	grid := controlState{control: core.ParameterControl{
		Key: "size", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: 1024, HasMin: true, HasMax: true,
	}}
	grid.refresh(core.Parameter{Key: "size", Value: "20"}, true)
	if !grid.apply(target, -1) || target.ints["size"] != 16 {
		t.Fatalf("size = %d, want 16", target.ints["size"])
	}
	if grid.apply(target, -1) {
		t.Fatal("stepping below the minimum should be a no-op")
	}
}

func TestControlRefreshRejectsGarbage(t *testing.T) {
	s := controlState{control: core.ParameterControl{Key: "mu", Type: core.ParamTypeFloat, Step: 0.001}}
	s.refresh(core.Parameter{Value: "abc"}, true)
	if s.hasValue || s.value != "--" {
		t.Fatalf("state = %+v", s)
	}
	s.refresh(core.Parameter{}, false)
	if s.hasValue {
		t.Fatal("missing parameter marked as present")
	}
	if _, ok := s.nextValue(1); ok {
		t.Fatal("control without a value should not step")
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	tests := []struct {
		step float64
		want string
	}{
		{0.0001, "0.0150"},
		{0.001, "0.015"},
		{0.01, "0.01"},
		{0.5, "0.0"},
	}
	for _, tt := range tests {
		if got := formatFloat(core.ParameterControl{Step: tt.step}, 0.015); got != tt.want {
			t.Errorf("step %v: got %q, want %q", tt.step, got, tt.want)
		}
	}
}

func TestToastFades(t *testing.T) {
	toast := NewToast(0.5, 1)
	if toast.Visible() {
		t.Fatal("new toast should be hidden")
	}
	toast.Show("Sectored Plate")
	toast.Update(0.25)
	if toast.Alpha() != 1 {
		t.Fatalf("alpha during hold = %v", toast.Alpha())
	}
	toast.Update(0.5)
	if a := toast.Alpha(); a <= 0 || a >= 1 {
		t.Fatalf("alpha while fading = %v", a)
	}
	for i := 0; i < 10; i++ {
		toast.Update(0.25)
	}
	if toast.Visible() || toast.Alpha() != 0 {
		t.Fatalf("toast still visible: %v", toast.Alpha())
	}
	if toast.Text() != "Sectored Plate" {
		t.Fatalf("text = %q", toast.Text())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		want string
	}{
		{
			"paused",
			Status{Frame: 42, Paused: true, Iterations: 3, CrystalCells: 7, Scale: 1.5},
			"paused  gen 42  x3/frame  crystal 7  zoom 1.50",
		},
		{
			"hovering",
			Status{Frame: 1, Iterations: 1, CrystalCells: 1, Scale: 1, Hovering: true, Row: 200, Col: 17},
			"running  gen 1  x1/frame  crystal 1  zoom 1.00  cell 200,17",
		},
		{
			"cell ignored off the lattice",
			Status{Iterations: 1, Scale: 1, Row: 5, Col: 5},
			"running  gen 0  x1/frame  crystal 0  zoom 1.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
