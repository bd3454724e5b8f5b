// Command qtview shows a quadtree being built. Hold the mouse button to add
// points; keys: r reset, 1 borders, 2 points, s pause, q query window,
// m move the window with the cursor, c circle window, w sweep the window,
// f log the frame rate.
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/robert-butts/quadtree/internal/config"
	"github.com/robert-butts/quadtree/internal/pointgen"
	"github.com/robert-butts/quadtree/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	log.SetLevel(cfg.Level())

	rnd, seed := pointgen.NewRand(cfg.Seed)
	log.WithField("seed", seed).Debug("random source")

	hud, err := newHUD()
	if err != nil {
		log.WithError(err).Fatal("loading font")
	}

	g := &Game{
		session: session.New(cfg, rnd, log.StandardLogger()),
		hud:     hud,
		width:   cfg.Width,
		height:  cfg.Height,
	}

	ebiten.SetWindowTitle("quadtree")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("running viewer")
	}
}
