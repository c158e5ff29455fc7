package chull

import (
	"github.com/osuushi/meshtools/geom"
	"github.com/osuushi/meshtools/internal"
)

// Finish an insertion cycle. Cone faces replace the visible faces on the
// horizon edges, then removed edges, visible faces, and vertices that ended up
// inside the hull are dropped from their arenas. end and cursor are the
// traversal positions in the vertex arena; the adjusted end position and the
// position of the next vertex to visit are returned.
func (h *Hull) cleanUp(end, cursor int) (int, int) {
	h.cleanEdges()
	h.cleanFaces()
	end, cursor = h.cleanVertices(end, cursor)
	h.scratch.reset()
	return end, cursor
}

func (h *Hull) cleanEdges() {
	for e, f := range h.scratch.newFace {
		edge := &h.edges[e]
		if h.scratch.isVisible(edge.Faces[0]) {
			edge.Faces[0] = f
		} else if edge.Faces[1] != noFace {
			edge.Faces[1] = f
		}
	}

	var remap []int
	h.edges, remap = compact(h.edges, func(i int) bool {
		return !h.scratch.remove[EdgeID(i)]
	})
	for fi := range h.faces {
		face := &h.faces[fi]
		for i, e := range face.Edges {
			face.Edges[i] = EdgeID(remap[e])
		}
	}
}

func (h *Hull) cleanFaces() {
	var remap []int
	h.faces, remap = compact(h.faces, func(i int) bool {
		return !h.scratch.visible[FaceID(i)]
	})
	for ei := range h.edges {
		edge := &h.edges[ei]
		for i, f := range edge.Faces {
			if f == noFace {
				continue
			}
			edge.Faces[i] = FaceID(remap[f])
		}
	}
	for fi, face := range h.faces {
		for _, e := range face.Edges {
			if e == noEdge {
				internal.Fatalf("face %d %v kept a removed edge", fi, face)
			}
		}
	}
}

func (h *Hull) cleanVertices(end, cursor int) (int, int) {
	onHull := make(map[VertexID]bool)
	for _, edge := range h.edges {
		onHull[edge.Ends[0]] = true
		onHull[edge.Ends[1]] = true
	}

	// A removed vertex before a traversal position shifts that position down by
	// one. The cursor also shifts when its own vertex is removed, so that the
	// next step lands on whatever took its place.
	newEnd, newCursor := end, cursor
	var remap []int
	h.vertices, remap = compact(h.vertices, func(i int) bool {
		v := h.vertices[i]
		if v.processed && !onHull[VertexID(i)] {
			if i < end {
				newEnd--
			}
			if i <= cursor {
				newCursor--
			}
			return false
		}
		return true
	})

	for ei := range h.edges {
		edge := &h.edges[ei]
		for i, v := range edge.Ends {
			edge.Ends[i] = VertexID(remap[v])
		}
	}
	for fi := range h.faces {
		face := &h.faces[fi]
		for i, v := range face.Vertices {
			if remap[v] < 0 {
				internal.Fatalf("face %d %v lost vertex %d", fi, face, v)
			}
			face.Vertices[i] = VertexID(remap[v])
		}
	}

	nv := len(h.vertices)
	if nv == 0 {
		return newEnd, 0
	}
	return geom.CircularIndex(newEnd, nv), geom.CircularIndex(newCursor+1, nv)
}

// Compact a slice in place, keeping the items for which keep returns true.
// keep is called once per item, in order, with the item's old position.
// Returns the shortened slice and a table from old positions to new ones, with
// -1 for dropped items.
func compact[T any](items []T, keep func(int) bool) ([]T, []int) {
	remap := make([]int, len(items))
	n := 0
	for i := range items {
		if !keep(i) {
			remap[i] = -1
			continue
		}
		remap[i] = n
		items[n] = items[i]
		n++
	}
	return items[:n], remap
}
