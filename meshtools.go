// 3D convex hulls and tetrahedralizations for Go.
//
// ConvexHull computes the convex hull of a point cloud with an incremental
// algorithm, and returns it as a closed triangle mesh with outward winding.
// Tetrahedralize splits a bounding tetrahedron around the points until every
// point is a vertex of the resulting tetrahedra.
//
// The chull and delaunay packages expose the full results, with options for
// logging and validation. The mesh package converts either result for
// rendering or export.
package meshtools

import (
	"github.com/osuushi/meshtools/chull"
	"github.com/osuushi/meshtools/delaunay"
	"github.com/osuushi/meshtools/geom"
	"github.com/pkg/errors"
)

type Vector = geom.Vector
type Hull = chull.Hull
type Tetrahedralization = delaunay.Tetrahedralization

type DegenerateInputError = geom.DegenerateInputError
type InsufficientPointsError = geom.InsufficientPointsError
type OutOfBoundsError = geom.OutOfBoundsError

// Compute the convex hull of the points. Faces index into the returned
// vertices, which are the hull's corners in the order they were first seen.
// Points strictly inside the hull are left out.
//
// At least 3 points are required, and they must not all be collinear. With
// exactly 3 points the result is two faces with opposite windings. Four or
// more points that are all coplanar are also rejected.
func ConvexHull(points []Vector) (faces [][3]int, vertices []Vector, err error) {
	hull, err := chull.Build(points)
	if err != nil {
		return nil, nil, err
	}
	faces, vertices = hull.Export()
	return faces, vertices, nil
}

// Tetrahedralize points lying within [-maxVal, maxVal]^3. The result includes
// the bounding tetrahedron and every tetrahedron that was later split.
func Tetrahedralize(points []Vector, maxVal float64) (*Tetrahedralization, error) {
	return delaunay.Build(points, maxVal)
}

func IsDegenerate(err error) bool {
	var target DegenerateInputError
	return errors.As(err, &target)
}

func IsInsufficient(err error) bool {
	var target InsufficientPointsError
	return errors.As(err, &target)
}
