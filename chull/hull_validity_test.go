package chull

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/osuushi/meshtools/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull of a non-degenerate point set is valid. The rules are:
// 1. Every exported vertex is one of the input points, and no input point is used twice.
// 2. Every directed edge appears on exactly one face, and its reverse on exactly one other (closed, consistently wound).
// 3. No face has zero area.
// 4. Every face faces away from the hull's centroid.
// 5. No input point lies outside the hull.
// 6. V - E + F = 2.
func AssertValidHull(t *testing.T, points []geom.Vector, hull *Hull) {
	faces, vertices := hull.Export()
	sources := hull.SourceIndices()
	require.Len(t, sources, len(vertices))
	require.LessOrEqual(t, len(vertices), len(points))

	used := make(map[int]bool)
	for i, source := range sources {
		require.False(t, used[source], "input point %d is used twice", source)
		used[source] = true
		require.Equal(t, points[source], vertices[i], "vertex %d does not match its source point", i)
	}

	directed := make(map[[2]int]int)
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			directed[[2]int{f[i], f[(i+1)%3]}]++
		}
	}
	for edge, count := range directed {
		require.Equal(t, 1, count, "directed edge %v appears %d times\n%s", edge, count, spew.Sdump(faces))
		require.Equal(t, 1, directed[[2]int{edge[1], edge[0]}], "edge %v has no opposite\n%s", edge, spew.Sdump(faces))
	}

	centroid := geom.Centroid(vertices)
	for i, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		require.Greater(t, geom.TriangleNormal(a, b, c).Len(), geom.Epsilon, "face %d %v has zero area", i, f)
		require.Equal(t, 1, geom.VolumeSign(a, b, c, centroid), "face %d %v faces inward", i, f)
	}

	for i, p := range points {
		assert.NotEqual(t, geom.Outside, hull.Contains(p), "input point %d %v is outside the hull", i, p)
	}

	assert.Equal(t, 2, len(vertices)-len(directed)/2+len(faces), "Euler characteristic")
	assert.Len(t, hull.Edges(), len(directed)/2)
	assert.NoError(t, hull.check())
}
