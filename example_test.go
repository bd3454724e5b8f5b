package quadtree_test

import (
	"fmt"

	"github.com/robert-butts/quadtree"
)

func ExampleQuadtree_Query() {
	// a 400x400 area with its origin in the top left corner.
	qt := quadtree.New(quadtree.NewBoundingBox(200, 200, 200, 200), 1)

	qt.Insert(quadtree.Point{X: 10, Y: 10})
	qt.Insert(quadtree.Point{X: 390, Y: 390})
	fmt.Println("outside:", qt.Insert(quadtree.Point{X: 401, Y: 0}))

	found := qt.Query(quadtree.NewBoundingBox(390, 390, 5, 5), nil)
	fmt.Println("box:", found)

	found = qt.Query(quadtree.NewCircle(0, 0, 20), nil)
	fmt.Println("circle:", found)

	// Output:
	// outside: false
	// box: [[390,390]]
	// circle: [[10,10]]
}

func ExampleQuadtree_Traverse() {
	qt := quadtree.New(quadtree.NewBoundingBox(200, 200, 200, 200), 2)
	for _, p := range []quadtree.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 390, Y: 10}} {
		qt.Insert(p)
	}

	qt.Traverse(func(n *quadtree.Quadtree) {
		fmt.Println(n.Depth(), n.Boundary().Min(), n.Boundary().Max(), n.Points())
	})

	// Output:
	// 1 [0,0] [200,200] []
	// 1 [200,0] [400,200] [[390,10]]
	// 1 [0,200] [200,400] []
	// 1 [200,200] [400,400] []
	// 0 [0,0] [400,400] [[10,10] [20,20]]
}
