package delaunay

import (
	"fmt"
	"strings"

	"github.com/osuushi/meshtools/geom"
)

// The read-only result of Build. Nothing mutates it after construction, so it
// is safe to share between goroutines.
type Tetrahedralization struct {
	origVertices []geom.Vector
	vertices     []geom.Vector
	tetras       []Tetra
	skipped      []int
	maxVal       float64
}

// The input points, in input order. The returned slice is a copy.
func (d *Tetrahedralization) OrigVertices() []geom.Vector {
	return append([]geom.Vector(nil), d.origVertices...)
}

// The augmented vertex array: the four bounding vertices followed by every
// input point, including skipped ones. Input point i is vertex
// i+BoundingVertexCount. The returned slice is a copy.
func (d *Tetrahedralization) Vertices() []geom.Vector {
	return append([]geom.Vector(nil), d.vertices...)
}

// Vertex indices of every tetrahedron ever created, root first. Split
// tetrahedra stay in the list; use Leaves to get the current partition.
func (d *Tetrahedralization) Tetras() [][4]int {
	result := make([][4]int, len(d.tetras))
	for i := range d.tetras {
		result[i] = d.tetras[i].Vertices
	}
	return result
}

func (d *Tetrahedralization) Len() int {
	return len(d.tetras)
}

// The full record for tetrahedron i. Its Children slice is a copy.
func (d *Tetrahedralization) Tetra(i int) Tetra {
	t := d.tetras[i]
	t.Children = append([]int(nil), t.Children...)
	return t
}

// Indices of the tetrahedra that were never split. Together they tile the
// bounding tetrahedron.
func (d *Tetrahedralization) Leaves() []int {
	var result []int
	for i := range d.tetras {
		if d.tetras[i].IsLeaf() {
			result = append(result, i)
		}
	}
	return result
}

// Leaves spanned only by input points, with no bounding vertex.
func (d *Tetrahedralization) InteriorLeaves() []int {
	var result []int
	for _, leaf := range d.Leaves() {
		interior := true
		for _, vi := range d.tetras[leaf].Vertices {
			if vi < BoundingVertexCount {
				interior = false
			}
		}
		if interior {
			result = append(result, leaf)
		}
	}
	return result
}

// Find the leaf containing p. Outside the bounding tetrahedron the index is -1.
// When p is on a shared boundary the classification is Coplanar and the index
// is one of the tetrahedra touching it.
func (d *Tetrahedralization) Locate(p geom.Vector) (int, geom.Classification) {
	return descend(d.vertices, d.tetras, p)
}

// Input indices of the points that were not inserted
func (d *Tetrahedralization) Skipped() []int {
	return append([]int(nil), d.skipped...)
}

func (d *Tetrahedralization) MaxVal() float64 {
	return d.maxVal
}

func (d *Tetrahedralization) String() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Tetrahedralization(%d points, %d tetras, %d skipped)\n",
		len(d.origVertices), len(d.tetras), len(d.skipped))
	for i, t := range d.tetras {
		fmt.Fprintf(&builder, "  %d: %v\n", i, t)
	}
	return builder.String()
}
