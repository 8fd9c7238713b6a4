package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into cut sequences. This is not a full (or
// even correct) svg parser. It finds the first polygon, whose vertex count
// gives n, and then reads every line element as a cut, in document order. Line
// endpoints must coincide with polygon vertices. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

const fixtureTolerance = 1e-6

type fixturePoint struct {
	x, y float64
}

func LoadFixture(name string) (n int, cuts []Cut) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []fixturePoint
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, fixturePoint{
			parseFixtureFloat(coordinates[0]),
			parseFixtureFloat(coordinates[1]),
		})
	}

	labelAt := func(x, y string) int {
		p := fixturePoint{parseFixtureFloat(x), parseFixtureFloat(y)}
		for label, q := range points {
			if math.Abs(p.x-q.x) < fixtureTolerance && math.Abs(p.y-q.y) < fixtureTolerance {
				return label
			}
		}
		log.Fatalf("Line endpoint %v in fixture %q is not a polygon vertex", p, name)
		return -1
	}

	for _, lineEl := range rootEl.FindAll("line") {
		cuts = append(cuts, Cut{
			I: labelAt(lineEl.Attributes["x1"], lineEl.Attributes["y1"]),
			J: labelAt(lineEl.Attributes["x2"], lineEl.Attributes["y2"]),
		})
	}
	return len(points), cuts
}

func parseFixtureFloat(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return value
}

// Build a polygon and apply every cut, failing loudly on errors
func applyCuts(n int, cuts []Cut) *Polygon {
	polygon, err := NewPolygon(n)
	if err != nil {
		log.Fatalf("Could not create polygon: %v", err)
	}
	for _, cut := range cuts {
		if err := polygon.Cut(cut.I, cut.J); err != nil {
			log.Fatalf("Could not apply cut %v: %v", cut, err)
		}
	}
	return polygon
}
