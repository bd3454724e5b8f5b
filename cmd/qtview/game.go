package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"

	"github.com/robert-butts/quadtree"
	"github.com/robert-butts/quadtree/internal/session"
)

var (
	background  = color.RGBA{51, 51, 51, 255}
	white       = color.RGBA{255, 255, 255, 255}
	queryColor  = color.RGBA{0, 255, 0, 255}
	movingColor = color.RGBA{0, 0, 255, 255}
	foundColor  = color.RGBA{0, 0, 255, 255}
)

var keyActions = map[ebiten.Key]session.Action{
	ebiten.KeyR:      session.Reset,
	ebiten.KeyDigit1: session.ToggleBorders,
	ebiten.KeyDigit2: session.TogglePoints,
	ebiten.KeyS:      session.TogglePause,
	ebiten.KeyQ:      session.ToggleQuery,
	ebiten.KeyM:      session.ToggleMove,
	ebiten.KeyC:      session.ToggleCircle,
	ebiten.KeyW:      session.ToggleSweep,
}

type Game struct {
	session *session.Session
	hud     *hud
	found   []quadtree.Point

	width, height int
}

func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Apply(action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		log.WithFields(log.Fields{
			"fps": ebiten.ActualFPS(),
			"tps": ebiten.ActualTPS(),
		}).Info("frame rate")
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.Insert(float64(mx), float64(my))
	}
	g.session.Update(1.0/float32(ebiten.TPS()), float64(mx), float64(my))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := g.session

	s.Tree.Traverse(func(n *quadtree.Quadtree) {
		if s.DrawBorders && n.IsLeaf() {
			b := n.Boundary()
			strokeBox(screen, b, white)
		}
		if s.DrawPoints {
			for _, p := range n.Points() {
				vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 1, 1, white, false)
			}
		}
	})

	if s.QueryMode {
		c := queryColor
		if s.MoveMode {
			c = movingColor
		}
		shape := s.QueryShape()
		switch q := shape.(type) {
		case quadtree.Circle:
			vector.StrokeCircle(screen, float32(q.Center().X), float32(q.Center().Y), float32(q.Radius()), 1, c, true)
		default:
			strokeBox(screen, shape.Bounds(), c)
		}

		g.found = s.Found(g.found[:0])
		for _, p := range g.found {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, foundColor, true)
		}
	}

	g.hud.draw(screen, s, len(g.found))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func strokeBox(dst *ebiten.Image, b quadtree.BoundingBox, c color.Color) {
	lo, hi := b.Min(), b.Max()
	vector.StrokeRect(dst, float32(lo.X), float32(lo.Y), float32(hi.X-lo.X), float32(hi.Y-lo.Y), 1, c, false)
}
