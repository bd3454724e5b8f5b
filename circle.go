package quadtree

import (
	"math"
)

// Circle is a circular query region. The squared radius is cached by
// NewCircle.
type Circle struct {
	center   Point
	r        float64
	rSquared float64
}

func NewCircle(cx, cy, r float64) Circle {
	return Circle{center: Point{cx, cy}, r: r, rSquared: r * r}
}

func (c Circle) Center() Point   { return c.center }
func (c Circle) Radius() float64 { return c.r }

// Contains reports whether p is within the circle, edge included.
//
// The two early returns only decide cases the exact test would decide the
// same way: |dx| > r or |dy| > r puts p outside, and |dx|+|dy| <= r implies
// dx²+dy² <= r².
func (c Circle) Contains(p Point) bool {
	dx := math.Abs(p.X - c.center.X)
	dy := math.Abs(p.Y - c.center.Y)

	if dx > c.r || dy > c.r {
		return false
	}
	if dx+dy <= c.r {
		return true
	}
	return dx*dx+dy*dy <= c.rSquared
}

// Intersects reports whether the circle overlaps b, using the point of b
// nearest the circle's center.
func (c Circle) Intersects(b BoundingBox) bool {
	nx := math.Max(b.min.X, math.Min(c.center.X, b.max.X))
	ny := math.Max(b.min.Y, math.Min(c.center.Y, b.max.Y))
	dx := nx - c.center.X
	dy := ny - c.center.Y
	return dx*dx+dy*dy <= c.rSquared
}

func (c Circle) Bounds() BoundingBox {
	return NewBoundingBox(c.center.X, c.center.Y, c.r, c.r)
}
