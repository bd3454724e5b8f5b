// Package session holds the state of an interactive quadtree viewer: the tree
// being built, the display toggles and the query window. It knows nothing
// about windows or input devices; the viewer translates input into calls.
package session

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/robert-butts/quadtree"
	"github.com/robert-butts/quadtree/internal/config"
	"github.com/robert-butts/quadtree/internal/pointgen"
)

// Action is a viewer command, usually bound to a key.
type Action int

const (
	Reset Action = iota
	ToggleBorders
	TogglePoints
	TogglePause
	ToggleQuery
	ToggleMove
	ToggleCircle
	ToggleSweep
)

// sweepSeconds is how long the query window takes to cross the area once.
const sweepSeconds = 4

type Session struct {
	Tree *quadtree.Quadtree

	DrawBorders bool
	DrawPoints  bool
	Paused      bool
	QueryMode   bool
	MoveMode    bool
	CircleQuery bool
	Sweeping    bool

	// QueryCenter is where the query window sits.
	QueryCenter quadtree.Point

	cfg   *config.Config
	log   logrus.FieldLogger
	sweep [2]*gween.Tween
	back  bool
}

// New builds a session whose tree covers cfg's area and holds cfg.Points
// generated points.
func New(cfg *config.Config, rnd *rand.Rand, log logrus.FieldLogger) *Session {
	s := &Session{
		DrawPoints:  true,
		QueryCenter: quadtree.Point{X: 255, Y: 255},
		cfg:         cfg,
		log:         log,
	}
	s.Tree = s.newTree(cfg.Capacity)

	points := pointgen.Generate(rnd, cfg.Distribution, s.Tree.Boundary(), cfg.Points)
	start := time.Now()
	inserted := 0
	for _, p := range points {
		if s.Tree.Insert(p) {
			inserted++
		}
	}
	log.WithFields(logrus.Fields{
		"points":   len(points),
		"inserted": inserted,
		"elapsed":  time.Since(start).String(),
	}).Info("seeded tree")
	return s
}

func (s *Session) newTree(capacity int) *quadtree.Quadtree {
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	return quadtree.New(
		quadtree.NewBoundingBox(w/2, h/2, w/2, h/2),
		capacity,
		quadtree.WithMaxDepth(s.cfg.MaxDepth),
		quadtree.WithLogger(s.log),
	)
}

// Apply carries out a.
func (s *Session) Apply(a Action) {
	switch a {
	case Reset:
		s.Tree = s.newTree(s.cfg.ResetCapacity)
		s.log.WithField("capacity", s.cfg.ResetCapacity).Info("tree reset")
	case ToggleBorders:
		s.DrawBorders = !s.DrawBorders
	case TogglePoints:
		s.DrawPoints = !s.DrawPoints
	case TogglePause:
		s.Paused = !s.Paused
	case ToggleQuery:
		s.QueryMode = !s.QueryMode
	case ToggleMove:
		s.MoveMode = !s.MoveMode
	case ToggleCircle:
		s.CircleQuery = !s.CircleQuery
	case ToggleSweep:
		s.Sweeping = !s.Sweeping
		if s.Sweeping {
			s.startSweep(false)
		}
	}
}

// Insert adds the point (x, y) to the tree unless the session is paused.
func (s *Session) Insert(x, y float64) bool {
	if s.Paused {
		return false
	}
	return s.Tree.Insert(quadtree.Point{X: x, Y: y})
}

// Update advances the query window by dt seconds. In move mode the window
// follows the cursor; while sweeping it is carried across the area and back.
func (s *Session) Update(dt float32, cursorX, cursorY float64) {
	if s.Paused || !s.QueryMode {
		return
	}
	switch {
	case s.MoveMode:
		s.QueryCenter = quadtree.Point{X: cursorX, Y: cursorY}
	case s.Sweeping:
		x, doneX := s.sweep[0].Update(dt)
		y, doneY := s.sweep[1].Update(dt)
		s.QueryCenter = quadtree.Point{X: float64(x), Y: float64(y)}
		if doneX && doneY {
			s.startSweep(!s.back)
		}
	}
}

// startSweep starts a pass from the top left corner to the bottom right, or
// the reverse if back is set.
func (s *Session) startSweep(back bool) {
	w, h := float32(s.cfg.Width), float32(s.cfg.Height)
	from, to := [2]float32{0, 0}, [2]float32{w, h}
	if back {
		from, to = to, from
	}
	s.back = back
	s.sweep[0] = gween.New(from[0], to[0], sweepSeconds, ease.InOutQuad)
	s.sweep[1] = gween.New(from[1], to[1], sweepSeconds, ease.InOutSine)
}

// QueryShape is the current query window: a box of the configured half
// dimensions or a circle of the configured radius, at QueryCenter.
func (s *Session) QueryShape() quadtree.Shape {
	c := s.QueryCenter
	if s.CircleQuery {
		return quadtree.NewCircle(c.X, c.Y, s.cfg.QueryRadius)
	}
	return quadtree.NewBoundingBox(c.X, c.Y, s.cfg.QueryHalfWidth, s.cfg.QueryHalfHeight)
}

// Found returns the points inside the query window, appended to buf.
func (s *Session) Found(buf []quadtree.Point) []quadtree.Point {
	return s.Tree.Query(s.QueryShape(), buf)
}
