// Package chull computes the convex hull of a 3D point set as a closed
// triangle mesh.
//
// The construction is the incremental "double triangle" method: two
// back-to-back copies of one triangle form a flat seed, and every remaining
// point is then added in turn. Each addition finds the faces the point can
// see, deletes them, and stitches the hole shut with a cone of new faces from
// the point to the horizon. Points that fall inside the hull are dropped as
// they are found.
package chull

import (
	"fmt"
	"io"

	"github.com/osuushi/meshtools/geom"
	"github.com/osuushi/meshtools/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A hull is write-once: Build runs the whole construction, and only read
// methods are exposed afterwards.
type Hull struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face

	scratch  cycle
	logger   *zap.Logger
	validate bool
	drawPath string
	drawOut  io.Writer
}

type Option func(*Hull)

// Debug logs are emitted for every insertion cycle.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Hull) {
		h.logger = logger
	}
}

// Check the mesh invariants after every insertion cycle. This is slow, and
// meant for tests and for diagnosing bad input.
func WithValidation(enabled bool) Option {
	return func(h *Hull) {
		h.validate = enabled
	}
}

// Compute the convex hull of the points.
//
// At least three points are required. Three points produce a flat hull made of
// the same triangle wound both ways. Otherwise the points must not all lie on
// one plane.
func Build(points []geom.Vector, setters ...Option) (result *Hull, err error) {
	h := &Hull{
		vertices: make([]Vertex, len(points)),
		scratch:  newCycle(),
		logger:   zap.NewNop(),
	}
	for _, set := range setters {
		set(h)
	}
	for i, p := range points {
		h.vertices[i] = Vertex{Position: p, Source: i}
	}

	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	h.build()
	return h, nil
}

func (h *Hull) build() {
	nv := len(h.vertices)
	if nv < 3 {
		internal.Throw(geom.InsufficientPointsError{Got: nv, Need: 3})
	}
	for i, v := range h.vertices {
		if !geom.Finite(v.Position) {
			internal.Throw(geom.DegenerateInputError{Reason: fmt.Sprintf("point %d is not finite", i)})
		}
	}

	if nv == 3 {
		if h.collinear(0, 1, 2) {
			internal.Throw(geom.DegenerateInputError{Reason: "all points are collinear"})
		}
		h.seed(0, 1, 2)
	} else {
		start := h.doubleTriangle()
		h.constructHull(start)
	}
	h.edgeOrderOnFaces()
	h.scratch = cycle{}

	if h.validate {
		if err := h.check(); err != nil {
			internal.Throw(errors.Wrap(err, "invalid hull"))
		}
	}
	h.logger.Debug("hull complete",
		zap.Int("vertices", len(h.vertices)),
		zap.Int("edges", len(h.edges)),
		zap.Int("faces", len(h.faces)),
	)
}

func (h *Hull) collinear(a, b, c VertexID) bool {
	return geom.Collinear(h.vertices[a].Position, h.vertices[b].Position, h.vertices[c].Position)
}

// Build the flat seed from three vertices, returning the vertex to insert
// first. The seed is taken from the first run of three cyclically consecutive
// points that are not collinear. If there is no such run, any non-collinear
// triple will do.
func (h *Hull) doubleTriangle() VertexID {
	nv := len(h.vertices)
	v0, v1, v2, ok := h.findSeedTriangle()
	if !ok {
		internal.Throw(geom.DegenerateInputError{Reason: "all points are collinear"})
	}
	f0 := h.seed(v0, v1, v2)

	// Find a point off the seed's plane. The seed vertices themselves have zero
	// volume, so scanning the whole ring is harmless.
	v3 := VertexID(geom.CircularIndex(int(v2)+1, nv))
	for h.volumeSign(f0, h.vertices[v3].Position) == 0 {
		v3 = VertexID(geom.CircularIndex(int(v3)+1, nv))
		if v3 == v2 {
			internal.Throw(geom.DegenerateInputError{Reason: "all points are coplanar"})
		}
	}
	h.logger.Debug("seed triangle",
		zap.Stringer("v0", h.vertices[v0]),
		zap.Stringer("v1", h.vertices[v1]),
		zap.Stringer("v2", h.vertices[v2]),
		zap.Stringer("first", h.vertices[v3]),
	)
	return v3
}

func (h *Hull) findSeedTriangle() (v0, v1, v2 VertexID, ok bool) {
	nv := len(h.vertices)
	for i := 0; i < nv; i++ {
		a := VertexID(i)
		b := VertexID(geom.CircularIndex(i+1, nv))
		c := VertexID(geom.CircularIndex(i+2, nv))
		if !h.collinear(a, b, c) {
			return a, b, c, true
		}
	}

	// Every consecutive run is degenerate, which can still happen with repeated
	// points. Fall back to the first non-collinear triple in index order.
	for i := 0; i < nv; i++ {
		for j := i + 1; j < nv; j++ {
			for k := j + 1; k < nv; k++ {
				a, b, c := VertexID(i), VertexID(j), VertexID(k)
				if !h.collinear(a, b, c) {
					return a, b, c, true
				}
			}
		}
	}
	return noVertex, noVertex, noVertex, false
}

// Two faces with the same three vertices and opposite windings, sharing all
// three edges. Returns the first face, which winds v0, v1, v2.
//
//	    v2
//	   /  \
//	 e2    e1
//	 /      \
//	v0--e0--v1
func (h *Hull) seed(v0, v1, v2 VertexID) FaceID {
	for _, v := range []VertexID{v0, v1, v2} {
		h.vertices[v].processed = true
	}

	e0 := h.addEdge(v0, v1)
	e1 := h.addEdge(v1, v2)
	e2 := h.addEdge(v2, v0)

	f0 := h.addFace(Face{
		Vertices: [3]VertexID{v0, v1, v2},
		Edges:    [3]EdgeID{e0, e1, e2},
	})
	f1 := h.addFace(Face{
		Vertices: [3]VertexID{v2, v1, v0},
		Edges:    [3]EdgeID{e2, e1, e0},
	})
	for _, e := range []EdgeID{e0, e1, e2} {
		h.edges[e].Faces = [2]FaceID{f0, f1}
	}
	return f0
}

// Add every vertex to the hull, starting from start and walking the vertex
// arena cyclically. The walk ends when it wraps around to the vertex it started
// from. Both positions move as interior vertices are removed from the arena.
func (h *Hull) constructHull(start VertexID) {
	end := int(start)
	v := int(start)
	for {
		h.vertices[v].processed = true
		h.addOne(VertexID(v))
		end, v = h.cleanUp(end, v)
		h.dbgDraw()

		if h.validate {
			if err := h.check(); err != nil {
				internal.Throw(errors.Wrapf(err, "after cycle ending at vertex index %d", v))
			}
		}
		if len(h.vertices) == 0 || v == end {
			break
		}
	}
}

func (h *Hull) addEdge(a, b VertexID) EdgeID {
	h.edges = append(h.edges, newEdge(a, b))
	return EdgeID(len(h.edges) - 1)
}

func (h *Hull) addFace(f Face) FaceID {
	h.faces = append(h.faces, f)
	return FaceID(len(h.faces) - 1)
}

func (h *Hull) facePositions(f FaceID) (a, b, c geom.Vector) {
	face := h.faces[f]
	return h.vertices[face.Vertices[0]].Position,
		h.vertices[face.Vertices[1]].Position,
		h.vertices[face.Vertices[2]].Position
}

// Negative when p can see the face, positive when p is behind it.
func (h *Hull) volumeSign(f FaceID, p geom.Vector) int {
	a, b, c := h.facePositions(f)
	return geom.VolumeSign(a, b, c, p)
}

// Reorder each face's edges so that edge i joins vertex i and vertex i+1.
func (h *Hull) edgeOrderOnFaces() {
	for fi := range h.faces {
		face := &h.faces[fi]
		for i := 0; i < 3; i++ {
			a := face.Vertices[i]
			b := face.Vertices[(i+1)%3]
			if h.edges[face.Edges[i]].joins(a, b) {
				continue
			}
			for j := i + 1; j < 3; j++ {
				if h.edges[face.Edges[j]].joins(a, b) {
					face.Edges[i], face.Edges[j] = face.Edges[j], face.Edges[i]
					break
				}
			}
		}
	}
}
