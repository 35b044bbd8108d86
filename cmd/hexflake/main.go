//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hexflake/internal/app"
	"hexflake/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := engine.New(engine.WithRule(cfg.Rule), engine.WithWindowSize(cfg.Window))
	if err != nil {
		log.Fatalf("hexflake: %v", err)
	}
	if cfg.Preset >= 0 {
		if err := session.ApplyPreset(cfg.Preset); err != nil {
			log.Fatalf("hexflake: %v", err)
		}
	}
	session.SetIterationsPerFrame(cfg.Iterations)
	session.PlayPause(cfg.Paused)

	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("hexflake: " + session.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
