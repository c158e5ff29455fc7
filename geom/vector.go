package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Every coordinate in the module is an mgl64 vector. The alias keeps call sites
// short while leaving the full mgl64 method set (Add, Sub, Cross, Dot, Len,
// Normalize...) available.
type Vector = mgl64.Vec3

// Linear interpolation between a and b. t=0 gives a, t=1 gives b.
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Mul(t))
}

func Centroid(points []Vector) Vector {
	var sum Vector
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Finite reports whether no component is NaN or infinite.
func Finite(v Vector) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Axis aligned bounds of a point set. Both corners are the zero vector for an
// empty set.
func Bounds(points []Vector) (min, max Vector) {
	if len(points) == 0 {
		return
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return
}

// MaxAbs gives the largest absolute coordinate in the set, which is the
// smallest value that bounds every point inside [-v, v]^3.
func MaxAbs(points []Vector) float64 {
	var result float64
	for _, p := range points {
		for _, c := range p {
			result = math.Max(result, math.Abs(c))
		}
	}
	return result
}
