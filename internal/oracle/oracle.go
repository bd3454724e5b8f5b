// Package oracle answers the same queries as a quadtree from an independent
// index, so that quadtree results can be checked.
package oracle

import (
	"github.com/peterstace/simplefeatures/rtree"

	"github.com/robert-butts/quadtree"
)

// Index holds a fixed set of points in an R-tree.
type Index struct {
	points []quadtree.Point
	tree   *rtree.RTree
}

// New bulk loads points. Each point is stored as a zero area box whose
// record ID is its position in points.
func New(points []quadtree.Point) *Index {
	items := make([]rtree.BulkItem, len(points))
	for i, p := range points {
		items[i] = rtree.BulkItem{
			Box:      rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y},
			RecordID: i,
		}
	}
	return &Index{points: points, tree: rtree.BulkLoad(items)}
}

// Query returns the points s contains: candidates come from the R-tree
// search over s's bounds, then each is tested against s exactly.
func (x *Index) Query(s quadtree.Shape) []quadtree.Point {
	b := s.Bounds()
	box := rtree.Box{MinX: b.Min().X, MinY: b.Min().Y, MaxX: b.Max().X, MaxY: b.Max().Y}
	var found []quadtree.Point
	_ = x.tree.RangeSearch(box, func(recordID int) error {
		if p := x.points[recordID]; s.Contains(p) {
			found = append(found, p)
		}
		return nil
	})
	return found
}

// Scan tests every point against s.
func Scan(points []quadtree.Point, s quadtree.Shape) []quadtree.Point {
	var found []quadtree.Point
	for _, p := range points {
		if s.Contains(p) {
			found = append(found, p)
		}
	}
	return found
}

// Equal reports whether a and b hold the same points the same number of
// times, in any order.
func Equal(a, b []quadtree.Point) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[quadtree.Point]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		if counts[p] == 0 {
			return false
		}
		counts[p]--
	}
	return true
}
