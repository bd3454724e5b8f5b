/*
Package quadtree implements a point quadtree.

A Quadtree node holds up to its capacity of points directly. The insert that
finds a node full splits it into four quadrants, and that point and every later
one are stored in the quadrants. Points already held by a node stay where
they are; they are never pushed down into the quadrants.

It only stores points, not ancillary data.

quadtree is not safe for concurrent use. Queries and traversals do not modify
the tree, so several of them may run at once as long as nothing is inserting.
*/
package quadtree

import (
	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the depth below which nodes are not split unless
// WithMaxDepth says otherwise. The root is at depth 0.
const DefaultMaxDepth = 32

// Quadrant names one of the four children of a split node. Quadrants are
// screen oriented, not y-up: Y grows downward, so north is the half with the
// smaller Y.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	}
	return "unknown"
}

// settings are shared by every node of one tree.
type settings struct {
	maxDepth int
	log      logrus.FieldLogger
}

// Option configures a tree built by New.
type Option func(*settings)

// WithMaxDepth sets the deepest level at which a node may still be created.
// A full node at that depth rejects further inserts instead of splitting.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

// WithLogger sets the logger used to report rejected inserts. The default is
// logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// Quadtree is a node of the tree. The value returned by New is the root,
// and every node is itself a Quadtree covering its own boundary.
type Quadtree struct {
	boundary BoundingBox
	capacity int
	points   []Point
	nw       *Quadtree
	ne       *Quadtree
	sw       *Quadtree
	se       *Quadtree

	depth    int
	size     int
	settings *settings
}

// New returns an empty tree covering boundary whose nodes hold up to capacity
// points each. It panics if capacity is less than 1 or the max depth is
// negative.
func New(boundary BoundingBox, capacity int, opts ...Option) *Quadtree {
	if capacity < 1 {
		panic("quadtree capacity must be at least 1")
	}
	s := &settings{
		maxDepth: DefaultMaxDepth,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxDepth < 0 {
		panic("quadtree max depth must not be negative")
	}
	return newNode(boundary, capacity, 0, s)
}

func newNode(b BoundingBox, capacity, depth int, s *settings) *Quadtree {
	return &Quadtree{
		boundary: b,
		capacity: capacity,
		points:   make([]Point, 0, capacity),
		depth:    depth,
		settings: s,
	}
}

// Insert adds p to the tree. It returns false, leaving the tree untouched,
// if p is outside the boundary, or if p would have to go below the max
// depth.
func (q *Quadtree) Insert(p Point) bool {
	if !q.boundary.Contains(p) {
		return false
	}
	if q.nw == nil && len(q.points) < q.capacity {
		q.points = append(q.points, p)
		q.size++
		return true
	}
	if q.nw == nil {
		if !q.canSubdivide() {
			q.settings.log.WithFields(logrus.Fields{
				"depth": q.depth,
				"x":     p.X,
				"y":     p.Y,
			}).Debug("quadtree node is full and cannot split, point rejected")
			return false
		}
		q.subdivide()
	}
	// the quadrants are tried in order, so a point on a shared edge goes to
	// the first one that contains it.
	if q.nw.Insert(p) ||
		q.ne.Insert(p) ||
		q.sw.Insert(p) ||
		q.se.Insert(p) {
		q.size++
		return true
	}
	return false
}

// canSubdivide reports whether the node may split: its children would be
// within the max depth, and halving its half dimensions still gives smaller,
// non-zero sizes.
func (q *Quadtree) canSubdivide() bool {
	if q.depth >= q.settings.maxDepth {
		return false
	}
	half := q.boundary.halfDimension
	hw, hh := half.X/2.0, half.Y/2.0
	return hw > 0 && hh > 0 && hw < half.X && hh < half.Y
}

// helper function of Insert()
// splits the node into quadrants. The points already here stay here.
func (q *Quadtree) subdivide() {
	q.nw = q.createQuadrant(NW)
	q.ne = q.createQuadrant(NE)
	q.sw = q.createQuadrant(SW)
	q.se = q.createQuadrant(SE)
}

func (q *Quadtree) createQuadrant(quad Quadrant) *Quadtree {
	return newNode(q.boundary.quadrant(quad), q.capacity, q.depth+1, q.settings)
}

// Query appends to found every stored point that s contains and returns the
// extended slice. Children are searched before the node's own points, in
// NW, NE, SW, SE order. Subtrees whose boundary s does not intersect are
// skipped without looking at their points.
func (q *Quadtree) Query(s Shape, found []Point) []Point {
	if !s.Intersects(q.boundary) {
		return found
	}
	if q.nw != nil {
		found = q.nw.Query(s, found)
		found = q.ne.Query(s, found)
		found = q.sw.Query(s, found)
		found = q.se.Query(s, found)
	}
	for _, p := range q.points {
		if s.Contains(p) {
			found = append(found, p)
		}
	}
	return found
}

// Traverse calls visit once for every node of the tree, children before
// their parent, NW, NE, SW, SE.
func (q *Quadtree) Traverse(visit func(*Quadtree)) {
	if q.nw != nil {
		q.nw.Traverse(visit)
		q.ne.Traverse(visit)
		q.sw.Traverse(visit)
		q.se.Traverse(visit)
	}
	visit(q)
}

func (q *Quadtree) IsLeaf() bool      { return q.nw == nil }
func (q *Quadtree) HasChildren() bool { return q.nw != nil }

func (q *Quadtree) Boundary() BoundingBox { return q.boundary }
func (q *Quadtree) Capacity() int         { return q.capacity }

// Depth is the node's distance from the root.
func (q *Quadtree) Depth() int { return q.depth }

// Points returns the points stored directly in this node, in insertion
// order. The slice is owned by the node and must not be modified.
func (q *Quadtree) Points() []Point {
	return q.points
}

// Child returns the given quadrant, or nil if the node has not split.
func (q *Quadtree) Child(quad Quadrant) *Quadtree {
	switch quad {
	case NW:
		return q.nw
	case NE:
		return q.ne
	case SW:
		return q.sw
	case SE:
		return q.se
	}
	return nil
}

// Len is the number of points stored in this node and below it.
func (q *Quadtree) Len() int {
	return q.size
}

// Height is the depth of the deepest node below q, counted from q. A leaf
// has height 0.
func (q *Quadtree) Height() int {
	h := 0
	q.Traverse(func(n *Quadtree) {
		if d := n.depth - q.depth; d > h {
			h = d
		}
	})
	return h
}
