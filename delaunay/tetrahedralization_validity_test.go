package delaunay

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/osuushi/meshtools/geom"
	"github.com/stretchr/testify/assert"
)

// Check the structural invariants of a finished tetrahedralization built with
// Descend location.
func AssertValidTetrahedralization(t *testing.T, points []geom.Vector, d *Tetrahedralization) {
	t.Helper()
	assert.Equal(t, points, d.OrigVertices())

	vertices := d.Vertices()
	if !assert.Len(t, vertices, BoundingVertexCount+len(points)) {
		return
	}
	assert.Equal(t, BoundingVertices(d.MaxVal()), vertices[:BoundingVertexCount])

	inserted := len(points) - len(d.Skipped())
	assert.Equal(t, 1+4*inserted, d.Len())
	assert.Len(t, d.Leaves(), 1+3*inserted)

	root := d.Tetra(0)
	assert.Equal(t, [4]int{0, 1, 2, 3}, root.Vertices)
	assert.Equal(t, 0, root.Parent)
	rootSign := geom.Sign(root.Determinant)
	assert.NotZero(t, rootSign)

	leafVolume := 0.0
	for i := 0; i < d.Len(); i++ {
		tetra := d.Tetra(i)
		if i > 0 {
			parent := d.Tetra(tetra.Parent)
			assert.Less(t, tetra.Parent, i)
			assert.Contains(t, parent.Children, i, "tetra %d is missing from its parent\n%s", i, spew.Sdump(parent))
		}
		if tetra.IsLeaf() {
			leafVolume += tetra.Determinant
		} else {
			assert.Len(t, tetra.Children, 4, "tetra %d", i)
		}
		assert.Equal(t, rootSign, geom.Sign(tetra.Determinant), "tetra %d is inverted\n%s", i, spew.Sdump(tetra))

		// Every corner is on the circumsphere
		for _, vi := range tetra.Vertices {
			distance := vertices[vi].Sub(tetra.Circumcenter).Len()
			assert.InDelta(t, tetra.Circumradius, distance, tetra.Circumradius*geom.Tolerance, "tetra %d vertex %d", i, vi)
		}
	}
	assert.InEpsilon(t, root.Determinant, leafVolume, geom.Tolerance)

	// Every inserted point is a vertex of exactly the leaves around it, and
	// at least one
	skipped := map[int]bool{}
	for _, index := range d.Skipped() {
		skipped[index] = true
	}
	for index := range points {
		if skipped[index] {
			continue
		}
		found := false
		for _, leaf := range d.Leaves() {
			for _, vi := range d.Tetra(leaf).Vertices {
				if vi == index+BoundingVertexCount {
					found = true
				}
			}
		}
		assert.True(t, found, "point %d is not a leaf vertex", index)
	}
}
