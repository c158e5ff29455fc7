package geom

import "fmt"

// The input cannot span the structure being built, for example every hull
// point lies on one line.
type DegenerateInputError struct {
	Reason string
}

func (e DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

type InsufficientPointsError struct {
	Got, Need int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: got %d, need at least %d", e.Got, e.Need)
}

// A point fell outside the declared coordinate bound.
type OutOfBoundsError struct {
	Index int
	Point Vector
	Bound float64
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("point %d %v lies outside [-%g, %g]^3", e.Index, e.Point, e.Bound, e.Bound)
}
