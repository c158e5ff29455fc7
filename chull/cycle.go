package chull

import (
	"github.com/osuushi/meshtools/internal"
	"go.uber.org/zap"
)

// Add one vertex to the hull. Every face the vertex can see is marked visible.
// Edges between two visible faces will be removed, and edges on the horizon
// (exactly one visible face) get a new cone face joining them to p.
//
// The mesh is left in a mixed state: visible faces and removed edges are still
// in their arenas, and horizon edges still point at their visible face. It is
// cleanUp's job to swap the cone faces in.
//
// Returns false if no face is visible, in which case p is inside the hull (or
// on it) and nothing was changed.
func (h *Hull) addOne(p VertexID) bool {
	position := h.vertices[p].Position
	visibleCount := 0
	for i := range h.faces {
		f := FaceID(i)
		if h.volumeSign(f, position) < 0 {
			h.scratch.visible[f] = true
			visibleCount++
		}
	}
	if visibleCount == 0 {
		h.logger.Debug("vertex inside hull", zap.Stringer("vertex", h.vertices[p]))
		return false
	}

	// Cone construction appends edges. Those only touch new faces, so they never
	// need a decision here.
	edgeCount := len(h.edges)
	cones := 0
	for i := 0; i < edgeCount; i++ {
		e := EdgeID(i)
		faces := h.edges[e].Faces
		visible0 := h.scratch.isVisible(faces[0])
		visible1 := h.scratch.isVisible(faces[1])
		switch {
		case visible0 && visible1:
			h.scratch.remove[e] = true
		case visible0 || visible1:
			h.scratch.newFace[e] = h.makeConeFace(e, p)
			cones++
		}
	}

	h.logger.Debug("vertex added",
		zap.Stringer("vertex", h.vertices[p]),
		zap.Int("visible", visibleCount),
		zap.Int("removed", len(h.scratch.remove)),
		zap.Int("cone", cones),
	)
	return true
}

// Build the face joining horizon edge e to p. The two edges from e's endpoints
// to p are shared with the neighboring cone faces, so each is created by
// whichever cone face needs it first, and found through the duplicate table
// after that.
func (h *Hull) makeConeFace(e EdgeID, p VertexID) FaceID {
	var spokes [2]EdgeID
	for i, end := range h.edges[e].Ends {
		spoke, ok := h.scratch.duplicate[end]
		if !ok {
			spoke = h.addEdge(end, p)
			h.scratch.duplicate[end] = spoke
		}
		spokes[i] = spoke
	}

	f := h.addFace(Face{
		Vertices: [3]VertexID{noVertex, noVertex, noVertex},
		Edges:    [3]EdgeID{e, spokes[0], spokes[1]},
	})
	h.faceMakeCcw(f, e, p)

	for _, spoke := range spokes {
		edge := &h.edges[spoke]
		for j := range edge.Faces {
			if edge.Faces[j] == noFace {
				edge.Faces[j] = f
				break
			}
		}
	}
	return f
}

// Give the new face f the same winding as the visible face it replaces along
// the horizon edge e. That face is about to be deleted, and its surviving
// neighbor across e runs the edge the other way, so matching the visible face
// keeps the mesh consistently oriented.
func (h *Hull) faceMakeCcw(f FaceID, e EdgeID, p VertexID) {
	edge := h.edges[e]
	visibleFace := edge.Faces[1]
	if h.scratch.isVisible(edge.Faces[0]) {
		visibleFace = edge.Faces[0]
	}
	fv := h.faces[visibleFace]

	i := 0
	for i < 3 && fv.Vertices[i] != edge.Ends[0] {
		i++
	}
	if i == 3 {
		internal.Fatalf("horizon edge %v is not on its visible face %v", edge, fv)
	}

	face := &h.faces[f]
	if fv.Vertices[(i+1)%3] != edge.Ends[1] {
		face.Vertices[0] = edge.Ends[1]
		face.Vertices[1] = edge.Ends[0]
	} else {
		face.Vertices[0] = edge.Ends[0]
		face.Vertices[1] = edge.Ends[1]
		face.Edges[1], face.Edges[2] = face.Edges[2], face.Edges[1]
	}
	face.Vertices[2] = p
}
