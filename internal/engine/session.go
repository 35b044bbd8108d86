// Package engine owns a simulation session: the field behind its update
// rule, the live coefficients, playback state and the output mapper.
//
// A Session is not safe for concurrent use. Hosts serialise calls on one
// session; separate sessions share nothing and may run on different
// goroutines.
package engine

import (
	"fmt"
	"strconv"

	"hexflake/internal/core"
	"hexflake/internal/render"
	"hexflake/internal/sims/snowflake"
)

// DefaultWindowSize is the frame side length used when no window size is given.
const DefaultWindowSize = 800

// Playback parameter keys understood by SetIntParameter.
const (
	KeyGridSize   = snowflake.KeySize
	KeyIterations = "iterations_per_frame"
)

// Grid size and iteration limits offered to HUD controls. SetGridSize accepts
// sides up to core.MaxGridSide and SetIterationsPerFrame has no upper bound.
const (
	minGridControl  = 16
	maxGridControl  = 1024
	gridControlStep = 16
	maxIterControl  = 64
)

// Session is the engine handle given to hosts.
type Session struct {
	factory core.Factory
	cfg     snowflake.Config

	sim    core.Sim
	play   Playback
	mapper *render.Mapper
}

type options struct {
	rule   string
	cfg    snowflake.Config
	window int
}

// Option customises New.
type Option func(*options)

// WithRule selects the registered update rule. The rule must understand the
// snowflake coefficient keys.
func WithRule(name string) Option {
	return func(o *options) { o.rule = name }
}

// WithConfig replaces the default grid size and coefficients.
func WithConfig(cfg snowflake.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithWindowSize sets the side length of produced frames in pixels.
func WithWindowSize(px int) Option {
	return func(o *options) { o.window = px }
}

// New creates a session with the default grid size and coefficients unless
// overridden by opts.
func New(opts ...Option) (*Session, error) {
	o := options{rule: snowflake.Name, cfg: snowflake.DefaultConfig(), window: DefaultWindowSize}
	for _, opt := range opts {
		opt(&o)
	}
	factory, err := core.Lookup(o.rule)
	if err != nil {
		return nil, err
	}
	o.cfg.Params = o.cfg.Params.Clamped()
	sim, err := build(factory, o.cfg)
	if err != nil {
		return nil, err
	}
	mapper, err := render.NewMapper(o.window, o.cfg.Size)
	if err != nil {
		return nil, err
	}
	return &Session{
		factory: factory,
		cfg:     o.cfg,
		sim:     sim,
		play:    NewPlayback(),
		mapper:  mapper,
	}, nil
}

func build(factory core.Factory, cfg snowflake.Config) (core.Sim, error) {
	if err := core.CheckSide(cfg.Size); err != nil {
		return nil, err
	}
	return factory(cfg.ToMap())
}

// Name returns the active rule name.
func (s *Session) Name() string { return s.sim.Name() }

// Size reports the field dimensions.
func (s *Session) Size() core.Size { return s.sim.Size() }

// GridSize returns the side length of the field.
func (s *Session) GridSize() int { return s.cfg.Size }

// Config returns the live grid size and coefficients.
func (s *Session) Config() snowflake.Config { return s.cfg }

// Reset reseeds the field at the current grid size and zeroes the frame
// counter. The paused flag is left alone.
func (s *Session) Reset() {
	s.sim.Reset()
	s.play.Rewind()
}

// SetGridSize reallocates and reseeds the field at side n. Prior content is
// discarded. Sizes outside [1, core.MaxGridSide] fail with
// core.ErrInvalidDimension and leave the session untouched.
func (s *Session) SetGridSize(n int) error {
	cfg := s.cfg
	cfg.Size = n
	return s.replace(cfg)
}

// replace swaps in a freshly built field for cfg. Nothing changes on error.
func (s *Session) replace(cfg snowflake.Config) error {
	sim, err := build(s.factory, cfg)
	if err != nil {
		return err
	}
	if err := s.mapper.SetGridSize(cfg.Size); err != nil {
		return err
	}
	s.cfg = cfg
	s.sim = sim
	s.play.Rewind()
	return nil
}

func (s *Session) setCoefficient(key string, v float64) float64 {
	applied, ok := s.cfg.Params.Set(key, v)
	if !ok {
		return 0
	}
	s.sim.SetFloatParameter(key, applied)
	return applied
}

// SetAlpha clamps and applies alpha, returning the applied value.
func (s *Session) SetAlpha(v float64) float64 { return s.setCoefficient(snowflake.KeyAlpha, v) }

// SetBeta clamps and applies beta, returning the applied value.
func (s *Session) SetBeta(v float64) float64 { return s.setCoefficient(snowflake.KeyBeta, v) }

// SetMu clamps and applies mu, returning the applied value.
func (s *Session) SetMu(v float64) float64 { return s.setCoefficient(snowflake.KeyMu, v) }

// SetKappa clamps and applies kappa, returning the applied value.
func (s *Session) SetKappa(v float64) float64 { return s.setCoefficient(snowflake.KeyKappa, v) }

// SetRho clamps and stores rho. The new density shows after the next reset.
func (s *Session) SetRho(v float64) float64 { return s.setCoefficient(snowflake.KeyRho, v) }

// SetTheta clamps and applies theta, returning the applied value.
func (s *Session) SetTheta(v float64) float64 { return s.setCoefficient(snowflake.KeyTheta, v) }

// Alpha through Sigma return the live coefficients.
func (s *Session) Alpha() float64 { return s.cfg.Params.Alpha }
func (s *Session) Beta() float64  { return s.cfg.Params.Beta }
func (s *Session) Mu() float64    { return s.cfg.Params.Mu }
func (s *Session) Kappa() float64 { return s.cfg.Params.Kappa }
func (s *Session) Rho() float64   { return s.cfg.Params.Rho }
func (s *Session) Theta() float64 { return s.cfg.Params.Theta }
func (s *Session) Gamma() float64 { return s.cfg.Params.Gamma }
func (s *Session) Sigma() float64 { return s.cfg.Params.Sigma }

// SetIterationsPerFrame clamps n to at least one and returns the applied value.
func (s *Session) SetIterationsPerFrame(n int) int { return s.play.SetIterationsPerFrame(n) }

// IterationsPerFrame returns the generations run per tick.
func (s *Session) IterationsPerFrame() int { return s.play.IterationsPerFrame() }

// PlayPause sets the playback state: true pauses, false runs.
func (s *Session) PlayPause(paused bool) { s.play.SetPaused(paused) }

// Paused reports whether ticks are suppressed.
func (s *Session) Paused() bool { return s.play.Paused() }

// Frame returns the number of generations since the last reset.
func (s *Session) Frame() uint64 { return s.play.Frame() }

// Step runs a single generation whatever the playback state.
func (s *Session) Step() { s.play.Step(s.sim, 1) }

// PresetCount returns the number of catalogue entries.
func (s *Session) PresetCount() int { return snowflake.PresetCount() }

// PresetInfo returns the name and description of preset i.
func (s *Session) PresetInfo(i int) (name, description string, err error) {
	p, err := snowflake.PresetAt(i)
	if err != nil {
		return "", "", err
	}
	return p.Name, p.Description, nil
}

// ApplyPreset replaces every coefficient and the grid size with preset i and
// reseeds the field. An unknown index fails with core.ErrInvalidIndex and
// changes nothing.
func (s *Session) ApplyPreset(i int) error {
	p, err := snowflake.PresetAt(i)
	if err != nil {
		return err
	}
	cfg := p.Config
	cfg.Params = cfg.Params.Clamped()
	if err := s.replace(cfg); err != nil {
		return fmt.Errorf("apply preset %q: %w", p.Name, err)
	}
	return nil
}

// SetWindowSize sets the frame side length in pixels. Sizes outside
// [1, render.MaxWindowSize] fail and keep the previous size.
func (s *Session) SetWindowSize(px int) error { return s.mapper.SetWindowSize(px) }

// WindowSize returns the frame side length in pixels.
func (s *Session) WindowSize() int { return s.mapper.WindowSize() }

// SetScale clamps and applies the drawing scale.
func (s *Session) SetScale(v float64) float64 { return s.mapper.SetScale(v) }

// Scale returns the drawing scale.
func (s *Session) Scale() float64 { return s.mapper.Scale() }

// CellAt returns the lattice cell drawn at pixel (x, y).
func (s *Session) CellAt(x, y int) (row, col int, ok bool) { return s.mapper.CellAt(x, y) }

// Tick advances the field by one frame according to the playback state and
// returns a freshly allocated frame of the result.
func (s *Session) Tick() render.Frame {
	s.play.Advance(s.sim)
	return s.mapper.Render(s.sim)
}

// Render paints the current field without advancing it.
func (s *Session) Render() render.Frame { return s.mapper.Render(s.sim) }

type statsProvider interface {
	Stats() snowflake.Stats
}

// Stats summarises the field. Rules that keep no mass channels report zeros.
func (s *Session) Stats() snowflake.Stats {
	if p, ok := s.sim.(statsProvider); ok {
		return p.Stats()
	}
	return snowflake.Stats{}
}

// Parameters returns the live configuration and playback state.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := snowflake.Snapshot(s.cfg)
	state := "running"
	if s.play.Paused() {
		state = "paused"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: KeyIterations, Label: "Iterations/frame", Type: core.ParamTypeInt, Value: strconv.Itoa(s.play.IterationsPerFrame())},
			{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.play.Frame(), 10)},
			{Key: "paused", Label: "State", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.play.Paused()), Description: state},
		},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable values: grid size, iterations
// per frame and every coefficient.
func (s *Session) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{
			Key: KeyGridSize, Label: "Grid size", Type: core.ParamTypeInt,
			Step: gridControlStep, Min: minGridControl, Max: maxGridControl, HasMin: true, HasMax: true,
		},
		{
			Key: KeyIterations, Label: "Iterations/frame", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: maxIterControl, HasMin: true, HasMax: true,
		},
	}
	return append(controls, snowflake.Controls()...)
}

// SetFloatParameter applies a coefficient by key.
func (s *Session) SetFloatParameter(key string, v float64) bool {
	if _, _, ok := snowflake.Bounds(key); !ok {
		return false
	}
	s.setCoefficient(key, v)
	return true
}

// SetIntParameter applies the grid size or iterations per frame.
func (s *Session) SetIntParameter(key string, v int) bool {
	switch key {
	case KeyGridSize:
		return s.SetGridSize(v) == nil
	case KeyIterations:
		s.SetIterationsPerFrame(v)
		return true
	}
	return false
}
