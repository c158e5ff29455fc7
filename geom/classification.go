package geom

// Result of testing a point against a closed region. Numeric degeneracy is
// reported as Coplanar, never as an error.
type Classification int

const (
	Outside Classification = iota
	Inside
	// The point lies on the boundary, within Epsilon.
	Coplanar
)

func (c Classification) String() string {
	switch c {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Coplanar:
		return "Coplanar"
	}
	return "Unknown"
}

// Combine per-facet signs into a classification. Every sign must match want
// for the point to be inside; any opposing sign puts it outside; otherwise some
// sign was zero and the point is on the boundary.
func ClassifySigns(want int, signs ...int) Classification {
	if want == 0 {
		return Coplanar
	}
	result := Inside
	for _, s := range signs {
		if s == -want {
			return Outside
		}
		if s == 0 {
			result = Coplanar
		}
	}
	return result
}
