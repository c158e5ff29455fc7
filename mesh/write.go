package mesh

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Write the mesh as Wavefront OBJ, with one normal per vertex.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	out := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(out, "o %s\n", m.Name)
	}
	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(out, "v %g %g %g\n", m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2])
	}
	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(out, "vn %g %g %g\n", m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2])
	}
	// OBJ indices are 1 based
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t]+1, m.Indices[3*t+1]+1, m.Indices[3*t+2]+1
		fmt.Fprintf(out, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return errors.Wrap(out.Flush(), "writing obj")
}

func (m *Mesh) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(m), "writing json")
}
