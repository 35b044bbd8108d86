package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Toast is a short message that holds for a moment and then fades out.
type Toast struct {
	text  string
	hold  float32
	fade  float32
	left  float32
	tween *gween.Tween
	alpha float32
}

// NewToast returns a toast that stays opaque for hold seconds and fades over
// fade seconds.
func NewToast(hold, fade float32) *Toast {
	return &Toast{hold: hold, fade: fade}
}

// Show replaces the message and restarts the animation.
func (t *Toast) Show(text string) {
	t.text = text
	t.left = t.hold
	t.alpha = 1
	t.tween = gween.New(1, 0, t.fade, ease.InQuad)
}

// Update advances the toast by dt seconds.
func (t *Toast) Update(dt float32) {
	if t.tween == nil {
		return
	}
	if t.left > 0 {
		t.left -= dt
		if t.left >= 0 {
			return
		}
		dt = -t.left
		t.left = 0
	}
	val, done := t.tween.Update(dt)
	t.alpha = val
	if done {
		t.alpha = 0
		t.tween = nil
	}
}

// Text returns the current message.
func (t *Toast) Text() string { return t.text }

// Alpha returns the current opacity in [0, 1].
func (t *Toast) Alpha() float32 { return t.alpha }

// Visible reports whether the toast should be drawn.
func (t *Toast) Visible() bool { return t.alpha > 0 }
