package chull

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/meshtools/geom"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures and outputs point clouds. This is not a
// full (or even correct) svg parser. It finds the single polygon in the file
// and reads its points attribute, where each point is an "x,y,z" triplet
// rather than the usual pair. The 2D rendering of the file is meaningless, but
// the fixtures stay viewable in anything that reads svg. If anything goes
// wrong, it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geom.Vector {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]geom.Vector, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordStrings := strings.Split(pointString, ",")
		if len(coordStrings) != 3 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		var point geom.Vector
		for i, coordString := range coordStrings {
			point[i], err = strconv.ParseFloat(coordString, 64)
			if err != nil {
				log.Fatalf("Invalid coordinate %q in fixture %q: %v", coordString, name, err)
			}
		}
		points = append(points, point)
	}
	return points
}

func TestFixtures(t *testing.T) {
	cases := []struct {
		name             string
		faces, vertices  int
		droppedInteriors []int
	}{
		{"octahedron", 8, 6, nil},
		{"icosahedron", 20, 12, nil},
		{"prism", 8, 6, nil},
		{"pyramid_with_interior", 6, 5, []int{0, 6, 7}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			points := LoadFixture(c.name)
			hull := build(t, points)
			AssertValidHull(t, points, hull)
			assert.Len(t, hull.Faces(), c.faces)
			assert.Len(t, hull.Vertices(), c.vertices)
			for _, source := range c.droppedInteriors {
				assert.NotContains(t, hull.SourceIndices(), source)
				assert.Equal(t, geom.Inside, hull.Contains(points[source]))
			}
		})
	}
}
