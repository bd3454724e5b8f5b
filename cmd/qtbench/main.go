package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/peterstace/simplefeatures/geom"
	log "github.com/sirupsen/logrus"

	"github.com/robert-butts/quadtree"
	"github.com/robert-butts/quadtree/internal/config"
	"github.com/robert-butts/quadtree/internal/oracle"
	"github.com/robert-butts/quadtree/internal/pointgen"
	"github.com/robert-butts/quadtree/internal/render"
)

type options struct {
	points   int
	queries  int
	capacity int
	maxDepth int
	seed     int64
	dist     string
	shape    string
	check    bool
	wkt      bool
	pngPath  string

	width, height         float64
	halfWidth, halfHeight float64
	radius                float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	log.SetLevel(cfg.Level())

	opts := options{
		width:      float64(cfg.Width),
		height:     float64(cfg.Height),
		halfWidth:  cfg.QueryHalfWidth,
		halfHeight: cfg.QueryHalfHeight,
		radius:     cfg.QueryRadius,
	}
	flag.IntVar(&opts.points, "points", cfg.Points, "number of points to insert")
	flag.IntVar(&opts.queries, "queries", 100, "number of random queries to run")
	flag.IntVar(&opts.capacity, "capacity", cfg.Capacity, "points held by a node before it splits")
	flag.IntVar(&opts.maxDepth, "max-depth", cfg.MaxDepth, "deepest level a node may split to")
	flag.Int64Var(&opts.seed, "seed", cfg.Seed, "seed (0 will cause the current unix nano epoch to be used)")
	flag.StringVar(&opts.dist, "dist", cfg.Distribution, "point distribution (gaussian, uniform)")
	flag.StringVar(&opts.shape, "shape", "rect", "query shape (rect, circle)")
	flag.BoolVar(&opts.check, "check", false, "check every query against an R-tree")
	flag.BoolVar(&opts.wkt, "wkt", false, "print the points found by the last query as WKT")
	flag.StringVar(&opts.pngPath, "png", "", "write a picture of the tree and the last query to this file")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.WithError(err).Fatal("qtbench failed")
	}
}

func run(opts options, out io.Writer) error {
	if opts.capacity < 1 {
		return fmt.Errorf("invalid capacity %d", opts.capacity)
	}
	if opts.maxDepth < 0 {
		return fmt.Errorf("invalid max depth %d", opts.maxDepth)
	}
	if opts.shape != "rect" && opts.shape != "circle" {
		return fmt.Errorf("unknown query shape %q", opts.shape)
	}

	rnd, seed := pointgen.NewRand(opts.seed)
	log.WithField("seed", seed).Info("generating points")

	boundary := quadtree.NewBoundingBox(opts.width/2, opts.height/2, opts.width/2, opts.height/2)
	qt := quadtree.New(boundary, opts.capacity, quadtree.WithMaxDepth(opts.maxDepth), quadtree.WithLogger(log.StandardLogger()))
	points := pointgen.Generate(rnd, opts.dist, boundary, opts.points)

	accepted := make([]quadtree.Point, 0, len(points))
	start := time.Now()
	for _, p := range points {
		if qt.Insert(p) {
			accepted = append(accepted, p)
		}
	}
	elapsed := time.Since(start)
	log.WithFields(log.Fields{
		"inserted": len(accepted),
		"rejected": len(points) - len(accepted),
		"height":   qt.Height(),
		"elapsed":  elapsed.String(),
	}).Info("inserted points")

	var index *oracle.Index
	if opts.check {
		index = oracle.New(accepted)
	}

	var (
		last    quadtree.Shape
		results []quadtree.Point
		found   int
	)
	var queryTime time.Duration
	for i := 0; i != opts.queries; i++ {
		last = randomShape(opts, rnd)
		start = time.Now()
		results = qt.Query(last, results[:0])
		queryTime += time.Since(start)
		found += len(results)

		if index != nil {
			if want := index.Query(last); !oracle.Equal(results, want) {
				return fmt.Errorf("query %d (%T at %v): quadtree found %d points, R-tree %d",
					i, last, last.Bounds().Center(), len(results), len(want))
			}
		}
	}
	log.WithFields(log.Fields{
		"queries": opts.queries,
		"found":   found,
		"elapsed": queryTime.String(),
		"checked": opts.check,
	}).Info("queried points")

	if opts.wkt && last != nil {
		for _, p := range results {
			pt, err := geom.XY{X: p.X, Y: p.Y}.AsPoint()
			if err != nil {
				return fmt.Errorf("wkt point: %w", err)
			}
			fmt.Fprintln(out, pt.AsText())
		}
	}

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, qt, last); err != nil {
			return err
		}
		log.WithField("path", opts.pngPath).Info("wrote picture")
	}
	return nil
}

func randomShape(opts options, rnd *rand.Rand) quadtree.Shape {
	cx, cy := rnd.Float64()*opts.width, rnd.Float64()*opts.height
	if opts.shape == "circle" {
		return quadtree.NewCircle(cx, cy, opts.radius)
	}
	return quadtree.NewBoundingBox(cx, cy, opts.halfWidth, opts.halfHeight)
}

func writePNG(path string, qt *quadtree.Quadtree, query quadtree.Shape) error {
	var buf bytes.Buffer
	if err := render.PNG(&buf, qt, render.Options{Query: query}); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing picture: %w", err)
	}
	return nil
}
