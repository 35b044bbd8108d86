//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads frames into a single ebiten image and draws it.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads frame into the painter image and draws it at the origin. A
// frame of a different size reallocates the backing image.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame Frame) {
	if frame.Width <= 0 || frame.Height <= 0 || len(frame.Pix) != 4*frame.Width*frame.Height {
		return
	}
	if frame.Width != fp.w || frame.Height != fp.h {
		fp.img.Dispose()
		fp.w, fp.h = frame.Width, frame.Height
		fp.img = ebiten.NewImage(fp.w, fp.h)
	}
	fp.img.WritePixels(frame.Pix)
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
