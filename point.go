package quadtree

import (
	"strconv"
)

// Point is a location in the plane. Points are values; the tree never
// modifies a point after it is inserted.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}
