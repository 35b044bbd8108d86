package render

import (
	"image/color"
	"math"
)

// LUTSize is the number of entries in the shade lookup table.
const LUTSize = 256

// Palette maps a shade in [-1, 1] onto a colour. The lower half of the table
// is the vapour background, the upper half the crystal.
type Palette [LUTSize]color.RGBA

// DefaultPalette is the ice palette used by every mapper.
var DefaultPalette = buildIcePalette()

func buildIcePalette() Palette {
	var p Palette
	for i := range p {
		t := float64(i) / float64(LUTSize-1)
		var r, g, b float64
		if t <= 0.5 {
			lt := smoothstep(t / 0.5)
			r = lerp(0.05, 0.25, lt)
			g = lerp(0.08, 0.35, lt)
			b = lerp(0.15, 0.50, lt)
		} else {
			lt := smoothstep((t - 0.5) / 0.5)
			r = lerp(0.20, 1.00, lt)
			g = lerp(0.50, 1.00, lt)
			b = lerp(0.70, 1.00, lt)
		}
		p[i] = color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
	}
	return p
}

// Lookup returns the colour for a shade. Out-of-range shades are clamped and
// NaN is treated as the neutral shade 0.
func (p *Palette) Lookup(shade float64) color.RGBA {
	return p[shadeIndex(shade)]
}

// Background is the colour of pixels that fall outside the lattice.
func (p *Palette) Background() color.RGBA { return p[0] }

func shadeIndex(shade float64) int {
	if math.IsNaN(shade) {
		shade = 0
	}
	t := (shade + 1) * 0.5
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return int(t * (LUTSize - 1))
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

func channel(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
