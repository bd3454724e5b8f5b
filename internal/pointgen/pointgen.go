// Package pointgen generates point sets for filling a quadtree.
package pointgen

import (
	"math/rand"
	"time"

	"github.com/robert-butts/quadtree"
)

// NewRand returns a generator for seed. A seed of 0 uses the current time.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Gaussian returns n points normally distributed around the middle of a
// width x height area, with a standard deviation of a sixth of each side.
// Points may fall outside the area.
func Gaussian(rnd *rand.Rand, width, height float64, n int) []quadtree.Point {
	points := make([]quadtree.Point, n)
	for i := range points {
		points[i] = quadtree.Point{
			X: rnd.NormFloat64()*width/6 + width/2,
			Y: rnd.NormFloat64()*height/6 + height/2,
		}
	}
	return points
}

// Uniform returns n points spread evenly over b.
func Uniform(rnd *rand.Rand, b quadtree.BoundingBox, n int) []quadtree.Point {
	lo, hi := b.Min(), b.Max()
	points := make([]quadtree.Point, n)
	for i := range points {
		points[i] = quadtree.Point{
			X: lo.X + rnd.Float64()*(hi.X-lo.X),
			Y: lo.Y + rnd.Float64()*(hi.Y-lo.Y),
		}
	}
	return points
}

// Generate dispatches on a distribution name, "gaussian" or "uniform".
// Gaussian points are centered in b.
func Generate(rnd *rand.Rand, distribution string, b quadtree.BoundingBox, n int) []quadtree.Point {
	if distribution == "uniform" {
		return Uniform(rnd, b, n)
	}
	hd := b.HalfDimension()
	points := Gaussian(rnd, 2*hd.X, 2*hd.Y, n)
	for i := range points {
		points[i].X += b.Min().X
		points[i].Y += b.Min().Y
	}
	return points
}
