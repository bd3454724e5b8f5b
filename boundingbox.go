package quadtree

// BoundingBox is an axis-aligned rectangle given by its center and half
// dimensions. It serves both as the boundary of a tree node and as a
// rectangular query. The corners are computed once by NewBoundingBox.
type BoundingBox struct {
	center        Point
	halfDimension Point
	min           Point
	max           Point
}

func NewBoundingBox(cx, cy, halfWidth, halfHeight float64) BoundingBox {
	return BoundingBox{
		center:        Point{cx, cy},
		halfDimension: Point{halfWidth, halfHeight},
		min:           Point{cx - halfWidth, cy - halfHeight},
		max:           Point{cx + halfWidth, cy + halfHeight},
	}
}

func (b BoundingBox) Center() Point        { return b.center }
func (b BoundingBox) HalfDimension() Point { return b.halfDimension }

// Min is the low corner, (cx-halfWidth, cy-halfHeight).
func (b BoundingBox) Min() Point { return b.min }

// Max is the high corner, (cx+halfWidth, cy+halfHeight).
func (b BoundingBox) Max() Point { return b.max }

// Contains reports whether p lies in the box. Both axes are closed
// intervals, so a point on an edge is contained.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.min.X &&
		p.X <= b.max.X &&
		p.Y >= b.min.Y &&
		p.Y <= b.max.Y
}

// Intersects reports whether the two boxes overlap. Boxes that only touch
// along an edge or at a corner intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.max.X >= other.min.X &&
		b.min.X <= other.max.X &&
		b.max.Y >= other.min.Y &&
		b.min.Y <= other.max.Y
}

func (b BoundingBox) Bounds() BoundingBox {
	return b
}

// quadrant returns the box covering quadrant q of b. The child corners are
// taken from b's corners and center rather than recomputed, so the four
// quadrants share edges exactly and leave no gap inside b.
func (b BoundingBox) quadrant(q Quadrant) BoundingBox {
	hw := b.halfDimension.X / 2.0
	hh := b.halfDimension.Y / 2.0
	c := b.center
	switch q {
	case NW:
		return BoundingBox{Point{c.X - hw, c.Y - hh}, Point{hw, hh}, b.min, c}
	case NE:
		return BoundingBox{Point{c.X + hw, c.Y - hh}, Point{hw, hh}, Point{c.X, b.min.Y}, Point{b.max.X, c.Y}}
	case SW:
		return BoundingBox{Point{c.X - hw, c.Y + hh}, Point{hw, hh}, Point{b.min.X, c.Y}, Point{c.X, b.max.Y}}
	default:
		return BoundingBox{Point{c.X + hw, c.Y + hh}, Point{hw, hh}, c, b.max}
	}
}
