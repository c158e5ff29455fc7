package delaunay

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/osuushi/meshtools/geom"
)

// Classify p against tetrahedron t. Each of the four determinants has one of
// t's rows replaced by p. They all share the sign of t's own determinant
// exactly when p is strictly inside.
func classify(vertices []geom.Vector, t *Tetra, p geom.Vector) geom.Classification {
	var rows [4]mgl64.Vec4
	for i, vi := range t.Vertices {
		rows[i] = geom.Homogeneous(vertices[vi])
	}
	signs := make([]int, 4)
	for i := range rows {
		replaced := rows
		replaced[i] = geom.Homogeneous(p)
		signs[i] = geom.Sign(geom.Det4(replaced))
	}
	return geom.ClassifySigns(geom.Sign(t.Determinant), signs...)
}

// Walk the location tree from the root toward p. The result is the deepest
// tetrahedron reached and p's classification against it:
//
//   - Inside: the tetrahedron is a leaf and strictly contains p.
//   - Coplanar: p is on the boundary of that tetrahedron (and so on a face,
//     edge, or vertex shared with a sibling), or the tetrahedron is flat.
//   - Outside: p is outside the root, and the index is -1.
func descend(vertices []geom.Vector, tetras []Tetra, p geom.Vector) (int, geom.Classification) {
	t := 0
	class := classify(vertices, &tetras[t], p)
	switch class {
	case geom.Outside:
		return -1, geom.Outside
	case geom.Coplanar:
		return t, geom.Coplanar
	}

	for !tetras[t].IsLeaf() {
		next, onBoundary := -1, -1
		for _, child := range tetras[t].Children {
			switch classify(vertices, &tetras[child], p) {
			case geom.Inside:
				next = child
			case geom.Coplanar:
				if onBoundary < 0 {
					onBoundary = child
				}
			}
			if next >= 0 {
				break
			}
		}
		if next < 0 {
			if onBoundary < 0 {
				// The children should tile their parent, so this only happens
				// through round off near a shared face.
				return t, geom.Coplanar
			}
			return onBoundary, geom.Coplanar
		}
		t = next
	}
	return t, geom.Inside
}
