package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/robert-butts/quadtree"
)

func testTree() *quadtree.Quadtree {
	qt := quadtree.New(quadtree.NewBoundingBox(200, 200, 200, 200), 1)
	qt.Insert(quadtree.Point{X: 10, Y: 10})
	qt.Insert(quadtree.Point{X: 390, Y: 390})
	return qt
}

func TestDraw(t *testing.T) {
	img := Draw(testTree(), Options{Query: quadtree.NewBoundingBox(390, 390, 5, 5)})
	if b := img.Bounds(); b.Dx() != 401 || b.Dy() != 401 {
		t.Fatalf("image is %dx%d, want 401x401", b.Dx(), b.Dy())
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 100, 50, background},
		{"leaf border on the split", 200, 50, border},
		{"outer border", 0, 300, border},
		{"stored point", 10, 10, point},
		{"query outline", 385, 388, queryColor},
		{"found point", 390, 390, found},
		{"found point halo", 391, 389, found},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawHidePoints(t *testing.T) {
	img := Draw(testTree(), Options{HidePoints: true})
	if got := img.RGBAAt(10, 10); got != background {
		t.Errorf("hidden point drawn: %v", got)
	}
	if got := img.RGBAAt(390, 390); got != background {
		t.Errorf("hidden point drawn: %v", got)
	}
}

func TestDrawAllBorders(t *testing.T) {
	qt := quadtree.New(quadtree.NewBoundingBox(200, 200, 200, 200), 1)
	qt.Insert(quadtree.Point{X: 10, Y: 10})
	if got := Draw(qt, Options{}).RGBAAt(400, 400); got != border {
		t.Errorf("root leaf border missing: %v", got)
	}
	qt.Insert(quadtree.Point{X: 20, Y: 20})
	if got := Draw(qt, Options{AllBorders: true}).RGBAAt(0, 0); got != border {
		t.Errorf("border missing with AllBorders: %v", got)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testTree(), Options{}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 401 || b.Dy() != 401 {
		t.Errorf("decoded image is %dx%d", b.Dx(), b.Dy())
	}
}

func TestPNGTooLarge(t *testing.T) {
	qt := quadtree.New(quadtree.NewBoundingBox(50000, 50, 50000, 50), 1)
	var buf bytes.Buffer
	if err := PNG(&buf, qt, Options{}); err == nil {
		t.Fatal("PNG drew a 100000 unit wide tree")
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written for a refused picture", buf.Len())
	}
}
