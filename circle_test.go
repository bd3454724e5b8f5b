package quadtree

import (
	"math"
	"math/rand"
	"testing"
)

// exactContains is the plain distance test Circle.Contains must agree with.
func exactContains(c Circle, p Point) bool {
	dx := p.X - c.Center().X
	dy := p.Y - c.Center().Y
	return dx*dx+dy*dy <= c.Radius()*c.Radius()
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(10, 10, 5)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{10, 10}, true},
		{"dx zero on edge", Point{10, 15}, true},
		{"dy zero on edge", Point{5, 10}, true},
		{"dx zero outside", Point{10, 15.5}, false},
		{"dy zero outside", Point{15.5, 10}, false},
		{"manhattan equal radius", Point{12, 13}, true},
		{"manhattan equal radius negative", Point{8, 7}, true},
		{"pythagorean edge", Point{13, 14}, true},
		{"pythagorean edge negative", Point{7, 6}, true},
		{"between fast paths inside", Point{13.5, 13.5}, true},
		{"between fast paths outside", Point{13.6, 13.6}, false},
		{"corner of bounds", Point{15, 15}, false},
		{"far", Point{100, -100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %t, want %t", tt.p, got, tt.want)
			}
			if got := exactContains(c, tt.p); got != tt.want {
				t.Errorf("exact test for %v = %t, want %t", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleContainsMatchesExact(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	signs := []float64{-1, 1}
	for i := 0; i < 100000; i++ {
		r := rnd.Float64() * 10
		c := NewCircle(rnd.Float64()*100-50, rnd.Float64()*100-50, r)

		var dx, dy float64
		switch i % 5 {
		case 0:
			dx, dy = 0, rnd.Float64()*2*r
		case 1:
			dx, dy = rnd.Float64()*2*r, 0
		case 2:
			// |dx|+|dy| == r
			dx = rnd.Float64() * r
			dy = r - dx
		case 3:
			// on or near the circle itself
			a := rnd.Float64() * 2 * math.Pi
			dx, dy = r*math.Cos(a), r*math.Sin(a)
		default:
			dx, dy = rnd.Float64()*1.5*r, rnd.Float64()*1.5*r
		}
		p := Point{
			c.Center().X + signs[rnd.Intn(2)]*dx,
			c.Center().Y + signs[rnd.Intn(2)]*dy,
		}
		if got, want := c.Contains(p), exactContains(c, p); got != want {
			t.Fatalf("circle %v r=%v: Contains(%v) = %t, exact test %t", c.Center(), r, p, got, want)
		}
	}
}

func TestCircleIntersects(t *testing.T) {
	b := NewBoundingBox(0, 0, 10, 10)
	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center inside", NewCircle(0, 0, 1), true},
		{"encloses box", NewCircle(0, 0, 100), true},
		{"overlaps side", NewCircle(12, 0, 3), true},
		{"touches side", NewCircle(15, 0, 5), true},
		{"misses side", NewCircle(15.1, 0, 5), false},
		{"touches corner", NewCircle(13, 14, 5), true},
		{"misses corner", NewCircle(14, 14, 5), false},
		{"inside bounds but off corner", NewCircle(-14, -14, 5.6), false},
		{"above", NewCircle(0, -20, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Intersects(b); got != tt.want {
				t.Errorf("Intersects = %t, want %t", got, tt.want)
			}
		})
	}
}

// A circle that contains a point of a box must intersect the box.
func TestCircleIntersectsContainedPoint(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		b := NewBoundingBox(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*5, rnd.Float64()*5)
		c := NewCircle(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*8)
		p := Point{
			b.Min().X + rnd.Float64()*(b.Max().X-b.Min().X),
			b.Min().Y + rnd.Float64()*(b.Max().Y-b.Min().Y),
		}
		if b.Contains(p) && c.Contains(p) && !c.Intersects(b) {
			t.Fatalf("circle %v r=%v contains %v of box %v-%v but does not intersect it",
				c.Center(), c.Radius(), p, b.Min(), b.Max())
		}
	}
}

func TestCircleBounds(t *testing.T) {
	b := NewCircle(3, 4, 2).Bounds()
	if b.Min() != (Point{1, 2}) || b.Max() != (Point{5, 6}) {
		t.Errorf("Bounds() = %v-%v", b.Min(), b.Max())
	}
}
