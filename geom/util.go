package geom

import "math"

// Sign tests on volumes and determinants treat anything within Epsilon of zero
// as zero.
const Epsilon = 1e-10

// Looser tolerance for comparing coordinates that went through arithmetic,
// such as circumcenters or normals.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func VectorsEqual(a, b Vector) bool {
	return Equal(a[0], b[0]) && Equal(a[1], b[1]) && Equal(a[2], b[2])
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Sign of a value, with Epsilon as the dead zone around zero.
func Sign(v float64) int {
	if v > Epsilon {
		return 1
	}
	if v < -Epsilon {
		return -1
	}
	return 0
}
