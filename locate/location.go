// File: location.go — the Vertex|Edge|Face tagged-union result shared
// by the brute-force locator and the trapezoidal map.
package locate

import "github.com/gopherplane/dcel/core"

// Kind classifies what a point-location query resolved to.
type Kind int

const (
	// AtFace reports the query point falls strictly inside a face,
	// away from any vertex or edge.
	AtFace Kind = iota
	// AtEdge reports the query point coincides with an edge.
	AtEdge
	// AtVertex reports the query point coincides with a vertex.
	AtVertex
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case AtFace:
		return "Face"
	case AtEdge:
		return "Edge"
	case AtVertex:
		return "Vertex"
	default:
		return "Kind(?)"
	}
}

// Location is the result of a point-location query: exactly one of
// Vertex, Edge, or Face is non-nil, selected by Kind.
type Location struct {
	Kind   Kind
	Vertex *core.Vertex
	Edge   *core.HalfEdge
	Face   *core.Face
}

// AtVertexLocation builds a vertex-kind result.
func AtVertexLocation(v *core.Vertex) Location {
	return Location{Kind: AtVertex, Vertex: v}
}

// AtEdgeLocation builds an edge-kind result. Which of an edge's two
// half-edges gets reported depends on the caller's own canonical
// orientation, not a rule this package imposes — see Locate's
// canonicalOrigin and trapezoid.canonicalEdges for each locator's
// convention.
func AtEdgeLocation(h *core.HalfEdge) Location {
	return Location{Kind: AtEdge, Edge: h}
}

// AtFaceLocation builds a face-kind result.
func AtFaceLocation(f *core.Face) Location {
	return Location{Kind: AtFace, Face: f}
}
