package app

import (
	"flag"
	"math"
	"strings"
	"testing"

	"hexflake/internal/engine"
	"hexflake/internal/sims/snowflake"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if cfg.Rule != snowflake.Name {
		t.Fatalf("default rule = %q", cfg.Rule)
	}
	if f := fs.Lookup("rule"); f == nil || !strings.Contains(f.Usage, snowflake.Name) {
		t.Fatal("-rule usage should list the registered rules")
	}
	if err := fs.Parse([]string{"-rule", "other", "-window", "640", "-ipf", "8", "-preset", "3", "-paused"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Rule != "other" || cfg.Window != 640 || cfg.Iterations != 8 || cfg.Preset != 3 || !cfg.Paused {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.TPS != 60 || cfg.Panel != 280 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func settle(t *testing.T, z *Zoom) float64 {
	t.Helper()
	for i := 0; i < 600 && !z.Settled(); i++ {
		z.Update()
	}
	if !z.Settled() {
		t.Fatalf("spring did not settle: pos %v", z.Scale())
	}
	return z.Update()
}

func TestZoomConverges(t *testing.T) {
	z := NewZoom(60, 0.5, 100)
	z.Nudge(2)
	if z.Settled() {
		t.Fatal("nudged spring reports settled")
	}
	if first := z.Update(); first <= 1 || first >= 2 {
		t.Fatalf("first step = %v, want between 1 and 2", first)
	}
	if got := settle(t, z); got != 2 {
		t.Fatalf("settled scale = %v, want 2", got)
	}
}

func TestZoomClamp(t *testing.T) {
	tests := []struct {
		name    string
		factors []float64
		want    float64
	}{
		{"upper limit", []float64{100}, 4},
		{"lower limit", []float64{100, 0.001}, 0.5},
		{"negative factor ignored", []float64{2, -1}, 2},
		{"nan ignored", []float64{math.NaN()}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewZoom(60, 0.5, 4)
			for _, f := range tt.factors {
				z.Nudge(f)
			}
			if got := settle(t, z); got != tt.want {
				t.Fatalf("scale = %v, want %v", got, tt.want)
			}
		})
	}
	z := NewZoom(60, 0.5, 4)
	z.Snap(3)
	if z.Scale() != 3 || !z.Settled() {
		t.Fatalf("snap: scale %v settled %v", z.Scale(), z.Settled())
	}
}

func TestMatchingPreset(t *testing.T) {
	s, err := engine.New(engine.WithConfig(snowflake.Config{Size: 16, Params: snowflake.DefaultConfig().Params}))
	if err != nil {
		t.Fatal(err)
	}
	if got := matchingPreset(s); got != -1 {
		t.Fatalf("defaults matched preset %d", got)
	}
	if err := s.ApplyPreset(2); err != nil {
		t.Fatal(err)
	}
	if got := matchingPreset(s); got != 2 {
		t.Fatalf("matchingPreset = %d, want 2", got)
	}
	s.SetBeta(s.Beta() + 0.5)
	if got := matchingPreset(s); got != -1 {
		t.Fatalf("edited preset still matched %d", got)
	}
}
