package chull

import (
	"fmt"
	"strings"

	"github.com/osuushi/meshtools/geom"
	"github.com/pkg/errors"
)

// Export the hull as a triangle list over a dense vertex list. Face indices
// refer to the returned vertices, and interior points are not included.
func (h *Hull) Export() (faces [][3]int, vertices []geom.Vector) {
	return h.Faces(), h.Vertices()
}

func (h *Hull) Faces() [][3]int {
	result := make([][3]int, len(h.faces))
	for i, f := range h.faces {
		result[i] = [3]int{int(f.Vertices[0]), int(f.Vertices[1]), int(f.Vertices[2])}
	}
	return result
}

func (h *Hull) Vertices() []geom.Vector {
	result := make([]geom.Vector, len(h.vertices))
	for i, v := range h.vertices {
		result[i] = v.Position
	}
	return result
}

// For each exported vertex, the index of the input point it came from.
func (h *Hull) SourceIndices() []int {
	result := make([]int, len(h.vertices))
	for i, v := range h.vertices {
		result[i] = v.Source
	}
	return result
}

// Unique undirected edges, as pairs of exported vertex indices.
func (h *Hull) Edges() [][2]int {
	result := make([][2]int, len(h.edges))
	for i, e := range h.edges {
		result[i] = [2]int{int(e.Ends[0]), int(e.Ends[1])}
	}
	return result
}

// The mesh records behind the exported lists. Ids index the same arenas as
// Vertices, Edges, and Faces, and Face(i).Edges[k] joins Face(i).Vertices[k]
// to the next vertex.
func (h *Hull) Vertex(id VertexID) Vertex {
	return h.vertices[id]
}

func (h *Hull) Edge(id EdgeID) Edge {
	return h.edges[id]
}

func (h *Hull) Face(id FaceID) Face {
	return h.faces[id]
}

// Unit outward normal of face i.
func (h *Hull) FaceNormal(i int) geom.Vector {
	a, b, c := h.facePositions(FaceID(i))
	return geom.TriangleNormal(a, b, c).Normalize()
}

// Enclosed volume. Zero for the flat three point hull.
func (h *Hull) Volume() float64 {
	var sum float64
	for i := range h.faces {
		a, b, c := h.facePositions(FaceID(i))
		sum += a.Dot(b.Cross(c))
	}
	return sum / 6
}

// Classify a point against the finished hull.
func (h *Hull) Contains(p geom.Vector) geom.Classification {
	signs := make([]int, len(h.faces))
	for i := range h.faces {
		signs[i] = h.volumeSign(FaceID(i), p)
	}
	return geom.ClassifySigns(1, signs...)
}

func (h *Hull) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hull(%d vertices, %d edges, %d faces)\n", len(h.vertices), len(h.edges), len(h.faces))
	for i, f := range h.faces {
		fmt.Fprintf(&b, "  %d: %v\n", i, f)
	}
	return b.String()
}

// Check the structural invariants of the mesh:
//
// 1. Every reference is in range.
// 2. Each face's edges join exactly the face's three vertex pairs.
// 3. Every edge is on exactly two faces, and each of them lists the edge.
func (h *Hull) check() error {
	nv, ne, nf := len(h.vertices), len(h.edges), len(h.faces)
	for ei, e := range h.edges {
		for _, v := range e.Ends {
			if v < 0 || int(v) >= nv {
				return errors.Errorf("edge %d %v has vertex out of range", ei, e)
			}
		}
		for _, f := range e.Faces {
			if f < 0 || int(f) >= nf {
				return errors.Errorf("edge %d %v has face out of range", ei, e)
			}
			if !h.faces[f].hasEdge(EdgeID(ei)) {
				return errors.Errorf("edge %d %v claims face %d %v", ei, e, f, h.faces[f])
			}
		}
	}
	for fi, f := range h.faces {
		for i := 0; i < 3; i++ {
			if f.Vertices[i] < 0 || int(f.Vertices[i]) >= nv {
				return errors.Errorf("face %d %v has vertex out of range", fi, f)
			}
			if f.Edges[i] < 0 || int(f.Edges[i]) >= ne {
				return errors.Errorf("face %d %v has edge out of range", fi, f)
			}
			if !h.edges[f.Edges[i]].touches(FaceID(fi)) {
				return errors.Errorf("face %d %v is not on its edge %v", fi, f, h.edges[f.Edges[i]])
			}
		}
		for i := 0; i < 3; i++ {
			a, b := f.Vertices[i], f.Vertices[(i+1)%3]
			found := false
			for _, e := range f.Edges {
				if h.edges[e].joins(a, b) {
					found = true
					break
				}
			}
			if !found {
				return errors.Errorf("face %d %v has no edge joining %d and %d", fi, f, a, b)
			}
		}
	}
	return nil
}
