// Package mesh converts hulls and tetrahedralizations into flat triangle
// meshes, and writes them out as Wavefront OBJ or JSON.
package mesh

import (
	"github.com/osuushi/meshtools/geom"
)

// A triangle mesh with flat arrays, ready to hand to a renderer. Vertices and
// normals have 3 floats per vertex, and indices have 3 entries per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
}

// Anything that can be exported as an indexed triangle list, such as a
// *chull.Hull.
type Triangulated interface {
	Faces() [][3]int
	Vertices() []geom.Vector
}

func FromHull(name string, hull Triangulated) *Mesh {
	return FromTriangles(name, hull.Vertices(), hull.Faces())
}

// Build a mesh from triangles over a shared vertex list. Vertices that no
// triangle uses are dropped, and the rest keep their relative order. Normals
// are the area weighted average of the normals of the faces around each
// vertex.
func FromTriangles(name string, vertices []geom.Vector, faces [][3]int) *Mesh {
	remap := make([]int, len(vertices))
	for i := range remap {
		remap[i] = -1
	}
	used := 0
	for _, face := range faces {
		for _, vi := range face {
			if remap[vi] < 0 {
				remap[vi] = 0
			}
		}
	}
	var positions []geom.Vector
	for i := range remap {
		if remap[i] == 0 {
			remap[i] = used
			used++
			positions = append(positions, vertices[i])
		}
	}

	normals := make([]geom.Vector, used)
	m := &Mesh{Name: name}
	for _, face := range faces {
		a, b, c := vertices[face[0]], vertices[face[1]], vertices[face[2]]
		// Unnormalized, so larger faces count for more
		normal := geom.TriangleNormal(a, b, c)
		for _, vi := range face {
			normals[remap[vi]] = normals[remap[vi]].Add(normal)
			m.Indices = append(m.Indices, uint32(remap[vi]))
		}
	}

	for i, p := range positions {
		m.Vertices = append(m.Vertices, float32(p[0]), float32(p[1]), float32(p[2]))
		n := normals[i]
		if n.Len() > geom.Epsilon {
			n = n.Normalize()
		}
		m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	}
	return m
}

// Build a mesh from the boundary triangles of each tetrahedron. Each
// tetrahedron contributes four faces wound counterclockwise as seen from
// outside it, so faces shared by neighbors appear twice with opposite
// windings. Flat tetrahedra are left out.
func FromTetrahedra(name string, vertices []geom.Vector, tetras [][4]int) *Mesh {
	var faces [][3]int
	for _, t := range tetras {
		a, b, c, d := vertices[t[0]], vertices[t[1]], vertices[t[2]], vertices[t[3]]
		switch geom.Sign(geom.SignedVolume(a, b, c, d)) {
		case 1:
			faces = append(faces,
				[3]int{t[0], t[1], t[2]},
				[3]int{t[0], t[3], t[1]},
				[3]int{t[1], t[3], t[2]},
				[3]int{t[0], t[2], t[3]},
			)
		case -1:
			faces = append(faces,
				[3]int{t[0], t[2], t[1]},
				[3]int{t[0], t[1], t[3]},
				[3]int{t[1], t[2], t[3]},
				[3]int{t[0], t[3], t[2]},
			)
		}
	}
	return FromTriangles(name, vertices, faces)
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

func (m *Mesh) Vertex(i int) geom.Vector {
	return geom.Vector{float64(m.Vertices[3*i]), float64(m.Vertices[3*i+1]), float64(m.Vertices[3*i+2])}
}

func (m *Mesh) Positions() []geom.Vector {
	result := make([]geom.Vector, m.VertexCount())
	for i := range result {
		result[i] = m.Vertex(i)
	}
	return result
}

// Unique undirected triangle edges, smaller index first, in order of first
// appearance.
func (m *Mesh) Edges() [][2]int {
	seen := map[[2]int]bool{}
	var result [][2]int
	for t := 0; t < m.TriangleCount(); t++ {
		for k := 0; k < 3; k++ {
			a := int(m.Indices[3*t+k])
			b := int(m.Indices[3*t+geom.CircularIndex(k+1, 3)])
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if !seen[key] {
				seen[key] = true
				result = append(result, key)
			}
		}
	}
	return result
}
