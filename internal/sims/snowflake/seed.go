package snowflake

import (
	perlin "github.com/aquilax/go-perlin"
)

// Texture noise is seeded with a constant so every reset is reproducible.
const (
	textureSeed   = 1729
	textureScale  = 1.0 / 16.0
	textureAlpha  = 2.0
	textureBeta   = 2.0
	textureOctave = 3
)

// fillVapour writes the initial vapour density. With sigma == 0 the field is
// uniform; otherwise rho is modulated by deterministic Perlin noise.
func (m *Model) fillVapour() {
	rho, sigma := m.cfg.Params.Rho, m.cfg.Params.Sigma
	if sigma == 0 {
		m.vapour.Fill(rho)
		return
	}
	noise := perlin.NewPerlin(textureAlpha, textureBeta, textureOctave, textureSeed)
	d := m.vapour.Cells()
	for row := 0; row < m.s; row++ {
		for col := 0; col < m.s; col++ {
			n := noise.Noise2D(float64(col)*textureScale, float64(row)*textureScale)
			v := rho * (1 + sigma*n)
			if v < 0 {
				v = 0
			}
			d[row*m.s+col] = v
		}
	}
}
