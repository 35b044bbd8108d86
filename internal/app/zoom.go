package app

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Zoom eases the drawing scale towards a target with a critically damped
// spring, so wheel input glides instead of jumping.
type Zoom struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	min    float64
	max    float64
}

const settleEpsilon = 1e-4

// NewZoom returns a zoom at scale 1 updated fps times per second.
func NewZoom(fps int, min, max float64) *Zoom {
	if fps <= 0 {
		fps = 60
	}
	return &Zoom{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		pos:    1,
		target: 1,
		min:    min,
		max:    max,
	}
}

// Scale returns the current eased scale.
func (z *Zoom) Scale() float64 { return z.pos }

// Nudge multiplies the target by factor, clamped to the zoom limits.
func (z *Zoom) Nudge(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	z.target = math.Max(z.min, math.Min(z.max, z.target*factor))
}

// Snap jumps straight to scale s.
func (z *Zoom) Snap(s float64) {
	z.target = math.Max(z.min, math.Min(z.max, s))
	z.pos = z.target
	z.vel = 0
}

// Update advances the spring by one frame and returns the new scale.
func (z *Zoom) Update() float64 {
	if z.Settled() {
		z.pos, z.vel = z.target, 0
		return z.pos
	}
	z.pos, z.vel = z.spring.Update(z.pos, z.vel, z.target)
	return z.pos
}

// Settled reports whether the spring has come to rest on its target.
func (z *Zoom) Settled() bool {
	return math.Abs(z.pos-z.target) < settleEpsilon && math.Abs(z.vel) < settleEpsilon
}
