package geom

import "github.com/go-gl/mathgl/mgl64"

// Three points are collinear when the cross product of the two spans from a
// vanishes.
func Collinear(a, b, c Vector) bool {
	cross := b.Sub(a).Cross(c.Sub(a))
	return Sign(cross[0]) == 0 && Sign(cross[1]) == 0 && Sign(cross[2]) == 0
}

// Six times the signed volume of the tetrahedron (a, b, c, p). It is positive
// when a, b, c wind counterclockwise seen from outside, with p behind the
// triangle's plane.
func SignedVolume(a, b, c, p Vector) float64 {
	ap := a.Sub(p)
	bp := b.Sub(p)
	cp := c.Sub(p)
	return ap.Dot(bp.Cross(cp))
}

// Sign of SignedVolume. A negative result means p sees the front side of the
// triangle.
func VolumeSign(a, b, c, p Vector) int {
	return Sign(SignedVolume(a, b, c, p))
}

// Unnormalized normal of the triangle, pointing toward the side from which a,
// b, c appear counterclockwise.
func TriangleNormal(a, b, c Vector) Vector {
	return b.Sub(a).Cross(c.Sub(a))
}

func Det3(row0, row1, row2 Vector) float64 {
	return mgl64.Mat3FromRows(row0, row1, row2).Det()
}

// 4x4 determinant by cofactor expansion along the first column. Each cofactor
// is the 3x3 determinant of the remaining rows, taken over columns 1 to 3.
func Det4(rows [4]mgl64.Vec4) float64 {
	minor := func(skip int) float64 {
		var m [3]Vector
		k := 0
		for i, row := range rows {
			if i == skip {
				continue
			}
			m[k] = Vector{row[1], row[2], row[3]}
			k++
		}
		return Det3(m[0], m[1], m[2])
	}
	return rows[0][0]*minor(0) - rows[1][0]*minor(1) + rows[2][0]*minor(2) - rows[3][0]*minor(3)
}

// Homogeneous row [x y z 1] used by orientation determinants.
func Homogeneous(v Vector) mgl64.Vec4 {
	return v.Vec4(1)
}

// Orientation determinant of four points. Its magnitude is six times the
// volume of the tetrahedron they span, and its sign encodes their winding.
func Orient(a, b, c, d Vector) float64 {
	return Det4([4]mgl64.Vec4{Homogeneous(a), Homogeneous(b), Homogeneous(c), Homogeneous(d)})
}
