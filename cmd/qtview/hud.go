package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/robert-butts/quadtree/internal/session"
)

const hudSize = 12

type hud struct {
	face *text.GoTextFace
}

func newHUD() (*hud, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing goregular: %w", err)
	}
	return &hud{face: &text.GoTextFace{Source: source, Size: hudSize}}, nil
}

func (h *hud) draw(screen *ebiten.Image, s *session.Session, found int) {
	line := fmt.Sprintf("points %d  height %d", s.Tree.Len(), s.Tree.Height())
	if s.QueryMode {
		line += fmt.Sprintf("  found %d", found)
	}
	if s.Paused {
		line += "  paused"
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, line, h.face, op)
}
