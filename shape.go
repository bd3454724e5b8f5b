package quadtree

// Shape is a query region. Query prunes every node whose boundary the shape
// does not intersect, then keeps the stored points the shape contains.
//
// BoundingBox and Circle are the two shapes provided. Intersects must not
// return false for a box that holds a point Contains would accept, or Query
// will miss that point.
type Shape interface {
	Contains(p Point) bool
	Intersects(b BoundingBox) bool
	// Bounds is the smallest BoundingBox enclosing the shape.
	Bounds() BoundingBox
}

var (
	_ Shape = BoundingBox{}
	_ Shape = Circle{}
)
