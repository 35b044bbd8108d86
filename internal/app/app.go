//go:build ebiten

package app

import (
	"fmt"

	"hexflake/internal/engine"
	"hexflake/internal/render"
	"hexflake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const wheelZoomStep = 1.1

// Game adapts an engine session to the ebiten.Game interface.
type Game struct {
	session *engine.Session
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	zoom    *Zoom

	window int
	frame  render.Frame
}

// New constructs a Game for the provided session.
func New(session *engine.Session, cfg *Config) *Game {
	window := session.WindowSize()
	g := &Game{
		session: session,
		painter: render.NewFramePainter(window, window),
		hud:     ui.NewHUD(session, cfg.Panel),
		overlay: ui.NewOverlay(),
		zoom:    NewZoom(cfg.TPS, render.MinScale, render.MaxScale),
		window:  window,
	}
	g.zoom.Snap(session.Scale())
	g.frame = session.Render()
	return g
}

// Update handles per-frame input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	stepOnce := false
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.PlayPause(!g.session.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.overlay.Announce("Reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.cyclePreset(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.cyclePreset(1)
	}
	for i, key := range []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.applyPreset(i)
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.zoom.Nudge(wheelZoomStep)
	} else if dy < 0 {
		g.zoom.Nudge(1 / wheelZoomStep)
	}
	g.session.SetScale(g.zoom.Update())

	g.hud.Update(g.window)

	if stepOnce && g.session.Paused() {
		g.session.Step()
		g.frame = g.session.Render()
	} else {
		g.frame = g.session.Tick()
	}

	status := ui.Status{
		Frame:        g.session.Frame(),
		Paused:       g.session.Paused(),
		Iterations:   g.session.IterationsPerFrame(),
		CrystalCells: g.session.Stats().CrystalCells,
		Scale:        g.session.Scale(),
	}
	status.Row, status.Col, status.Hovering = g.session.CellAt(ebiten.CursorPosition())
	g.overlay.Update(status)
	return nil
}

func (g *Game) cyclePreset(dir int) {
	n := g.session.PresetCount()
	if n == 0 {
		return
	}
	cur := matchingPreset(g.session)
	if cur < 0 && dir < 0 {
		cur = 0
	}
	g.applyPreset((cur + dir + n) % n)
}

func (g *Game) applyPreset(i int) {
	if err := g.session.ApplyPreset(i); err != nil {
		g.overlay.Announce(err.Error())
		return
	}
	name, _, _ := g.session.PresetInfo(i)
	g.overlay.Announce(fmt.Sprintf("%d: %s", i+1, name))
}

// Draw renders the current frame, the HUD and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame)
	g.hud.Draw(screen, g.window, g.window)
	g.overlay.Draw(screen, g.window)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window + g.hud.Width(), g.window
}
