// Package delaunay builds a tetrahedralization of a 3D point set by
// incremental insertion.
//
// Construction starts from one synthetic tetrahedron large enough to hold
// every input point. Each point is then located in the tetrahedron that
// contains it, and that tetrahedron is split into four children sharing the
// new point. Parents are kept, so the tetrahedra form a tree whose leaves
// partition the bounding volume.
//
// This is a plain subdivision. No flips are performed after a split, so the
// result is not guaranteed to satisfy the empty circumsphere property; the
// circumspheres are computed and exposed for callers that want to check it.
package delaunay

import (
	"math"

	"github.com/osuushi/meshtools/geom"
	"github.com/osuushi/meshtools/internal"
	"go.uber.org/zap"
)

// Number of synthetic vertices at the front of the vertex array
const BoundingVertexCount = 4

// How each new point finds the tetrahedron to split.
type Location int

const (
	// Walk down from the root through the children, and split the leaf that
	// contains the point.
	Descend Location = iota
	// Only ever test the root, and split it whenever it contains the point,
	// even if it has already been split. This matches older releases, and
	// produces overlapping children once more than one point is inserted.
	RootOnly
)

func (l Location) String() string {
	switch l {
	case Descend:
		return "descend"
	case RootOnly:
		return "root-only"
	}
	return "unknown"
}

type builder struct {
	origVertices []geom.Vector
	vertices     []geom.Vector
	tetras       []Tetra
	skipped      []int
	maxVal       float64

	location Location
	strict   bool
	logger   *zap.Logger
}

type Option func(*builder)

func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

func WithLocation(location Location) Option {
	return func(b *builder) {
		b.location = location
	}
}

// Fail with an OutOfBoundsError when a point lies outside [-maxVal, maxVal]^3,
// instead of trying to insert it anyway.
func WithStrictBounds(strict bool) Option {
	return func(b *builder) {
		b.strict = strict
	}
}

// Tetrahedralize the points, which must lie within [-maxVal, maxVal]^3.
//
// Points that cannot be placed strictly inside a single tetrahedron (outside
// the bounding tetrahedron, or exactly on a face, edge, or vertex of the one
// they would split) are left out and reported by Skipped.
func Build(points []geom.Vector, maxVal float64, setters ...Option) (result *Tetrahedralization, err error) {
	b := &builder{
		logger: zap.NewNop(),
		maxVal: maxVal,
	}
	for _, set := range setters {
		set(b)
	}

	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	b.build(points)
	return &Tetrahedralization{
		origVertices: b.origVertices,
		vertices:     b.vertices,
		tetras:       b.tetras,
		skipped:      b.skipped,
		maxVal:       b.maxVal,
	}, nil
}

func (b *builder) build(points []geom.Vector) {
	if math.IsNaN(b.maxVal) || math.IsInf(b.maxVal, 0) || b.maxVal <= 0 {
		internal.Throw(geom.DegenerateInputError{Reason: "bounding scale must be positive and finite"})
	}

	b.origVertices = append([]geom.Vector(nil), points...)
	b.vertices = make([]geom.Vector, 0, BoundingVertexCount+len(points))
	b.vertices = append(b.vertices, BoundingVertices(b.maxVal)...)
	b.tetras = append(b.tetras, newTetra(b.vertices, [4]int{0, 1, 2, 3}, 0))

	for i, p := range points {
		if b.strict && !inBounds(p, b.maxVal) {
			internal.Throw(geom.OutOfBoundsError{Index: i, Point: p, Bound: b.maxVal})
		}
		b.vertices = append(b.vertices, p)
		b.insert(len(b.vertices) - 1)
	}

	b.logger.Debug("tetrahedralization complete",
		zap.Int("points", len(points)),
		zap.Int("tetras", len(b.tetras)),
		zap.Int("skipped", len(b.skipped)),
	)
}

// The four synthetic vertices for a given bound. They form a regular
// tetrahedron around the origin. With k = 3*maxVal, every face plane is
// |x ± y ± z| = 2k away from the origin in the L1 sense, while any point of
// the cube has |x ± y ± z| <= 3*maxVal = k, so the cube is well inside.
func BoundingVertices(maxVal float64) []geom.Vector {
	k := 3 * maxVal
	return []geom.Vector{
		{2 * k, 2 * k, 2 * k},
		{2 * k, -2 * k, -2 * k},
		{-2 * k, 2 * k, -2 * k},
		{-2 * k, -2 * k, 2 * k},
	}
}

func inBounds(p geom.Vector, maxVal float64) bool {
	for _, c := range p {
		if !(math.Abs(c) <= maxVal) {
			return false
		}
	}
	return true
}

func (b *builder) insert(vi int) {
	p := b.vertices[vi]
	t, class := b.locate(p)
	if class != geom.Inside {
		b.skipped = append(b.skipped, vi-BoundingVertexCount)
		b.logger.Debug("point skipped",
			zap.Int("index", vi-BoundingVertexCount),
			zap.Int("tetra", t),
			zap.Stringer("class", class),
		)
		return
	}
	b.split(t, vi)
	b.logger.Debug("point inserted",
		zap.Int("index", vi-BoundingVertexCount),
		zap.Int("tetra", t),
		zap.Int("tetras", len(b.tetras)),
	)
}

func (b *builder) locate(p geom.Vector) (int, geom.Classification) {
	if b.location == RootOnly {
		return 0, classify(b.vertices, &b.tetras[0], p)
	}
	return descend(b.vertices, b.tetras, p)
}

// Replace tetrahedron t by four children, each with one of t's vertices
// swapped for the new vertex vi. Swapping keeps the row order, so when vi is
// inside t every child has the same orientation sign as t.
func (b *builder) split(t int, vi int) {
	v := b.tetras[t].Vertices
	childVertices := [4][4]int{
		{v[0], v[1], v[2], vi},
		{v[0], v[1], vi, v[3]},
		{v[0], vi, v[2], v[3]},
		{vi, v[1], v[2], v[3]},
	}
	for _, indices := range childVertices {
		b.tetras = append(b.tetras, newTetra(b.vertices, indices, t))
		b.tetras[t].Children = append(b.tetras[t].Children, len(b.tetras)-1)
	}
}
