package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract between an update rule with its field store and
// the playback and output layers. Implementations own their buffers; callers
// never see them directly.
type Sim interface {
	Name() string
	Size() Size
	// Reset reseeds the field with the rule's deterministic seed pattern.
	Reset()
	// Step performs one full generation transition.
	Step()
	// Shade writes one display intensity in [-1, 1] per cell into dst, in
	// row-major order. Only the first min(len(dst), W*H) entries are written.
	Shade(dst []float64)
	FloatParameterSetter
}

// Factory constructs a Sim using a flag-style configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q: %w", name, ErrUnknownSim)
	}
	return f, nil
}
