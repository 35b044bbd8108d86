package engine

import "hexflake/internal/core"

// Playback tracks run/pause state, the number of generations per frame tick
// and the generation counter.
type Playback struct {
	paused     bool
	iterations int
	frame      uint64
}

// NewPlayback returns a running controller advancing one generation per tick.
func NewPlayback() Playback {
	return Playback{iterations: 1}
}

// SetPaused sets the target state: true pauses, false runs.
func (p *Playback) SetPaused(paused bool) { p.paused = paused }

// Paused reports whether ticks are currently suppressed.
func (p *Playback) Paused() bool { return p.paused }

// SetIterationsPerFrame stores n clamped to at least one and returns the
// applied value.
func (p *Playback) SetIterationsPerFrame(n int) int {
	if n < 1 {
		n = 1
	}
	p.iterations = n
	return n
}

// IterationsPerFrame returns the number of generations run per tick.
func (p *Playback) IterationsPerFrame() int { return p.iterations }

// Frame returns the number of generations since the last rewind.
func (p *Playback) Frame() uint64 { return p.frame }

// Advance runs one frame tick against sim and returns the number of
// generations performed.
func (p *Playback) Advance(sim core.Sim) int {
	if p.paused {
		return 0
	}
	return p.Step(sim, p.iterations)
}

// Step runs n generations regardless of the paused flag.
func (p *Playback) Step(sim core.Sim, n int) int {
	for i := 0; i < n; i++ {
		sim.Step()
	}
	if n > 0 {
		p.frame += uint64(n)
	}
	return max(n, 0)
}

// Rewind zeroes the generation counter.
func (p *Playback) Rewind() { p.frame = 0 }
