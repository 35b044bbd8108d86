package render

// fillShadeRGBA converts per-cell shades into RGBA pixels in buf. cellOf maps
// every pixel to a cell index, or to -1 for pixels outside the lattice.
func fillShadeRGBA(buf []byte, cellOf []int32, shades []float64, palette *Palette) {
	bg := palette.Background()
	for i, cell := range cellOf {
		base := i * 4
		col := bg
		if cell >= 0 && int(cell) < len(shades) {
			col = palette.Lookup(shades[cell])
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
