package delaunay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/osuushi/meshtools/geom"
)

// Tetrahedra are never deleted. Splitting one appends its four children to
// the list, and the parent stays behind as an interior node of the location
// tree.
type Tetra struct {
	// Indices into the augmented vertex array
	Vertices [4]int
	// Orientation determinant of the four vertices in homogeneous coordinates.
	// Six times the signed volume.
	Determinant  float64
	Circumcenter geom.Vector
	Circumradius float64
	// The tetrahedron this one was split from. The root is its own parent.
	Parent   int
	Children []int
}

func (t *Tetra) IsLeaf() bool {
	return len(t.Children) == 0
}

// Strict circumsphere membership. Points within Tolerance of the sphere are
// not in it, and neither is anything when the tetrahedron is flat.
func (t *Tetra) InCircumsphere(p geom.Vector) bool {
	if geom.Sign(t.Determinant) == 0 {
		return false
	}
	distance := p.Sub(t.Circumcenter).Len()
	return distance < t.Circumradius && !geom.Equal(distance, t.Circumradius)
}

func (t Tetra) String() string {
	return fmt.Sprintf("Tetra(%v det:%g parent:%d children:%v)", t.Vertices, t.Determinant, t.Parent, t.Children)
}

func newTetra(vertices []geom.Vector, indices [4]int, parent int) Tetra {
	var corners [4]geom.Vector
	for i, index := range indices {
		corners[i] = vertices[index]
	}
	t := Tetra{
		Vertices:    indices,
		Determinant: geom.Orient(corners[0], corners[1], corners[2], corners[3]),
		Parent:      parent,
	}
	t.Circumcenter, t.Circumradius = circumsphere(corners, t.Determinant)
	return t
}

// Center and radius of the sphere through the four corners, given their
// orientation determinant. Each center coordinate is a 4x4 determinant with
// that coordinate's column replaced by the squared lengths, over twice the
// orientation determinant. A flat tetrahedron gives a non-finite center.
func circumsphere(corners [4]geom.Vector, determinant float64) (geom.Vector, float64) {
	var xRows, yRows, zRows [4]mgl64.Vec4
	for i, v := range corners {
		lenSqr := v.LenSqr()
		xRows[i] = mgl64.Vec4{lenSqr, v[1], v[2], 1}
		yRows[i] = mgl64.Vec4{lenSqr, v[0], v[2], 1}
		zRows[i] = mgl64.Vec4{lenSqr, v[0], v[1], 1}
	}
	a := 2 * determinant
	center := geom.Vector{
		geom.Det4(xRows) / a,
		-geom.Det4(yRows) / a,
		geom.Det4(zRows) / a,
	}
	return center, center.Sub(corners[0]).Len()
}
