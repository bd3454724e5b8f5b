// Package render draws a quadtree into an image for debugging.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/robert-butts/quadtree"
)

type Options struct {
	// AllBorders draws every node's boundary; by default only leaves are
	// drawn, which already outlines every split.
	AllBorders bool
	// HidePoints skips the stored points.
	HidePoints bool
	// Query, if set, is outlined and the points it finds are highlighted.
	Query quadtree.Shape
}

var (
	background = color.RGBA{51, 51, 51, 255}
	border     = color.RGBA{255, 255, 255, 255}
	point      = color.RGBA{255, 255, 255, 255}
	queryColor = color.RGBA{0, 255, 0, 255}
	found      = color.RGBA{0, 0, 255, 255}
)

// Draw renders t at one pixel per unit, with the top left corner of t's
// boundary at the image origin.
func Draw(t *quadtree.Quadtree, opts Options) *image.RGBA {
	b := t.Boundary()
	origin := b.Min()
	w := int(math.Ceil(b.Max().X-origin.X)) + 1
	h := int(math.Ceil(b.Max().Y-origin.Y)) + 1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	toPixel := func(p quadtree.Point) image.Point {
		return image.Pt(int(math.Round(p.X-origin.X)), int(math.Round(p.Y-origin.Y)))
	}

	t.Traverse(func(n *quadtree.Quadtree) {
		if opts.AllBorders || n.IsLeaf() {
			outline(img, image.Rectangle{Min: toPixel(n.Boundary().Min()), Max: toPixel(n.Boundary().Max())}, border)
		}
		if opts.HidePoints {
			return
		}
		for _, p := range n.Points() {
			img.Set(toPixel(p).X, toPixel(p).Y, point)
		}
	})

	if opts.Query != nil {
		qb := opts.Query.Bounds()
		outline(img, image.Rectangle{Min: toPixel(qb.Min()), Max: toPixel(qb.Max())}, queryColor)
		for _, p := range t.Query(opts.Query, nil) {
			dot(img, toPixel(p), found)
		}
	}
	return img
}

// MaxSide is the largest width or height, in pixels, PNG will draw.
const MaxSide = 8192

// PNG writes the Draw rendering of t to w. Trees whose boundary would need
// more than MaxSide pixels on a side are refused.
func PNG(w io.Writer, t *quadtree.Quadtree, opts Options) error {
	b := t.Boundary()
	if side := math.Max(b.Max().X-b.Min().X, b.Max().Y-b.Min().Y); side > MaxSide {
		return fmt.Errorf("boundary %v-%v too large to draw", b.Min(), b.Max())
	}
	if err := png.Encode(w, Draw(t, opts)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// outline draws the edges of r, both corners included.
func outline(img draw.Image, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X, y, c)
	}
}

func dot(img draw.Image, p image.Point, c color.Color) {
	r := image.Rect(p.X-1, p.Y-1, p.X+2, p.Y+2)
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}
