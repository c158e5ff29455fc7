package chull

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshtools/dbg"
	"github.com/osuushi/meshtools/geom"
)

// The mesh lives in three arenas owned by the hull. Elements refer to each
// other by position in those arenas, and the arenas are compacted at the end
// of every insertion cycle, so an id is only meaningful until the next
// cleanup.
type VertexID int
type EdgeID int
type FaceID int

const (
	noVertex VertexID = -1
	noEdge   EdgeID   = -1
	noFace   FaceID   = -1
)

type Vertex struct {
	Position geom.Vector
	// Index of the point in the slice passed to Build
	Source int
	// Set once the vertex has gone through an insertion cycle, or was used for
	// the seed triangle. Processed vertices that end a cycle without any edge
	// are interior and get dropped.
	processed bool
}

// The order of the endpoints encodes a traversal direction, but the edge
// itself is undirected. Either face slot may be empty while the mesh is being
// stitched, but not once a cycle is complete.
type Edge struct {
	Ends  [2]VertexID
	Faces [2]FaceID
}

// Vertices wind counterclockwise seen from outside the hull. After the final
// ordering pass, Edges[i] joins Vertices[i] and Vertices[i+1].
type Face struct {
	Vertices [3]VertexID
	Edges    [3]EdgeID
}

func newEdge(a, b VertexID) Edge {
	return Edge{
		Ends:  [2]VertexID{a, b},
		Faces: [2]FaceID{noFace, noFace},
	}
}

func (e Edge) joins(a, b VertexID) bool {
	return (e.Ends[0] == a && e.Ends[1] == b) || (e.Ends[0] == b && e.Ends[1] == a)
}

func (e Edge) touches(f FaceID) bool {
	return e.Faces[0] == f || e.Faces[1] == f
}

func (f Face) hasEdge(e EdgeID) bool {
	return f.Edges[0] == e || f.Edges[1] == e || f.Edges[2] == e
}

func (v Vertex) String() string {
	name := dbg.Name(v.Source)
	if v.processed {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return fmt.Sprintf("%s#%d%v", name, v.Source, v.Position)
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%d-%d faces:%d,%d)", e.Ends[0], e.Ends[1], e.Faces[0], e.Faces[1])
}

func (f Face) String() string {
	return fmt.Sprintf("Face(%v edges:%v)", f.Vertices, f.Edges)
}

// Transient state for a single insertion cycle. It is created empty, filled in
// by addOne, consumed by cleanUp, then reset before the next vertex.
type cycle struct {
	// Faces the current point can see, and which will be deleted
	visible map[FaceID]bool
	// Edges whose faces are both visible, so they end up inside the hull
	remove map[EdgeID]bool
	// Cone face built on a horizon edge, to be swapped in for the visible face
	newFace map[EdgeID]FaceID
	// Edge already built from a horizon vertex to the current point
	duplicate map[VertexID]EdgeID
}

func newCycle() cycle {
	return cycle{
		visible:   make(map[FaceID]bool),
		remove:    make(map[EdgeID]bool),
		newFace:   make(map[EdgeID]FaceID),
		duplicate: make(map[VertexID]EdgeID),
	}
}

func (c *cycle) reset() {
	*c = newCycle()
}

func (c *cycle) isVisible(f FaceID) bool {
	return f != noFace && c.visible[f]
}
