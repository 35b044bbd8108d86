//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const toastFPS = 60

// Overlay draws the playback readout and preset toasts over the view.
type Overlay struct {
	status Status
	toast  *Toast
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{toast: NewToast(1.2, 0.8)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Announce shows msg as a fading toast.
func (o *Overlay) Announce(msg string) { o.toast.Show(msg) }

// Update stores the latest status and advances the toast by one frame.
func (o *Overlay) Update(status Status) {
	o.status = status
	o.toast.Update(1.0 / toastFPS)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, viewWidth int) {
	face := basicfont.Face7x13
	line := o.status.String()
	bounds := text.BoundString(face, line)
	o.fillRect(screen, 4, 4, bounds.Dx()+8, 18, color.RGBA{A: 160})
	text.Draw(screen, line, face, 8, 17, color.RGBA{R: 220, G: 230, B: 240, A: 255})

	if !o.toast.Visible() {
		return
	}
	a := o.toast.Alpha()
	msg := o.toast.Text()
	tb := text.BoundString(face, msg)
	x := (viewWidth - tb.Dx()) / 2
	o.fillRect(screen, x-8, 30, tb.Dx()+16, 22, color.RGBA{A: uint8(180 * a)})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 45)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(a)
	text.DrawWithOptions(screen, msg, face, op)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
