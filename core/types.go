// Package core implements the doubly-connected edge list (DCEL): the
// vertex/half-edge/face data structure that represents a planar
// subdivision, and the store that owns it.
//
// A Subdivision holds three keyed collections:
//
//   - vertices, ordered by a lexicographic comparator with a fixed
//     epsilon, keyed by coordinate;
//   - edges, keyed by a monotonically assigned integer;
//   - faces, keyed by a monotonically assigned integer, always
//     containing key 0 (the unbounded face).
//
// Concurrency uses a split-lock convention: muVert guards the vertex
// catalog, muEdgeFace guards the edge and face catalogs together (they
// are mutated atomically by every topological editor, so splitting
// them further would only add lock-ordering risk for no benefit).
// Callers performing structural edits are expected to serialize those
// edits themselves — the locks here protect concurrent readers against
// torn reads of the catalogs, not against two writers racing.
package core

import (
	"sort"
	"sync"

	"github.com/gopherplane/dcel/geom"
)

// Vertex is a point in the subdivision. It holds one incident
// half-edge whose Origin is this vertex; every other incident half-edge
// is reachable from it via the twin/next chain (Edge.Twin().Next(), …).
type Vertex struct {
	Point geom.Point
	edge  *HalfEdge
}

// Edge returns one half-edge whose Origin is v, or nil if v has no
// incident edges (a vertex created by NewVertex is listed by
// Subdivision.Vertices() and stays edge-less until an edge is linked
// to it).
func (v *Vertex) Edge() *HalfEdge { return v.edge }

// HalfEdge is one oriented representative of a full edge. Destination
// equals Twin.Origin.
type HalfEdge struct {
	key    int
	origin *Vertex
	twin   *HalfEdge
	next   *HalfEdge
	prev   *HalfEdge
	face   *Face
}

// Key returns the half-edge's unique integer key within its subdivision.
func (e *HalfEdge) Key() int { return e.key }

// Origin returns the vertex this half-edge starts at.
func (e *HalfEdge) Origin() *Vertex { return e.origin }

// Destination returns the vertex this half-edge ends at (its twin's origin).
func (e *HalfEdge) Destination() *Vertex { return e.twin.origin }

// Twin returns the oppositely oriented half-edge of the same full edge.
func (e *HalfEdge) Twin() *HalfEdge { return e.twin }

// Next returns the next half-edge in this edge's boundary cycle.
func (e *HalfEdge) Next() *HalfEdge { return e.next }

// Previous returns the half-edge whose Next is e.
func (e *HalfEdge) Previous() *HalfEdge { return e.prev }

// Face returns the face this half-edge bounds.
func (e *HalfEdge) Face() *Face { return e.face }

// Segment returns the geometric segment this half-edge represents.
func (e *HalfEdge) Segment() geom.Segment {
	return geom.Segment{Start: e.origin.Point, End: e.twin.origin.Point}
}

// Cycle calls fn for every half-edge in e's boundary cycle, starting at
// e and following Next until e is reached again. It stops early if fn
// returns false.
func (e *HalfEdge) Cycle(fn func(*HalfEdge) bool) {
	if e == nil {
		return
	}
	cur := e
	for {
		if !fn(cur) {
			return
		}
		cur = cur.next
		if cur == e {
			return
		}
	}
}

// Face is a connected region of the plane bounded by half-edges. Key 0
// is reserved for the unbounded face, which has no outer boundary.
type Face struct {
	key   int
	outer *HalfEdge
	inner []*HalfEdge
}

// Key returns the face's unique integer key within its subdivision.
func (f *Face) Key() int { return f.key }

// Outer returns the half-edge bounding f from outside, or nil for the
// unbounded face.
func (f *Face) Outer() *HalfEdge { return f.outer }

// Inner returns the half-edges bounding f's holes, one per hole.
func (f *Face) Inner() []*HalfEdge { return append([]*HalfEdge(nil), f.inner...) }

// Unbounded reports whether f is the always-present unbounded face.
func (f *Face) Unbounded() bool { return f.key == 0 }

// SubdivisionOption configures a Subdivision at construction time.
type SubdivisionOption func(*Subdivision)

// WithEpsilon sets the coordinate-comparison tolerance. The default is 0
// (exact comparison). Negative values are rejected by NewSubdivision.
func WithEpsilon(eps float64) SubdivisionOption {
	return func(s *Subdivision) { s.eps = eps }
}

// Subdivision owns every vertex, half-edge, and face of a planar
// subdivision. External references obtained from its query methods are
// invalidated by any subsequent structural edit.
type Subdivision struct {
	muVert     sync.RWMutex
	muEdgeFace sync.RWMutex

	eps       float64
	epsLocked bool

	vertices []*Vertex // sorted ascending by geom.CompareY(eps)

	edges       map[int]*HalfEdge
	faces       map[int]*Face
	nextEdgeKey int
	nextFaceKey int
}

// NewSubdivision creates an empty subdivision containing only the
// unbounded face (key 0). Returns ErrNegativeEpsilon if opts specify a
// negative epsilon.
func NewSubdivision(opts ...SubdivisionOption) (*Subdivision, error) {
	s := &Subdivision{
		edges:       make(map[int]*HalfEdge),
		faces:       make(map[int]*Face),
		nextFaceKey: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.eps < 0 {
		return nil, ErrNegativeEpsilon
	}
	s.faces[0] = &Face{key: 0}
	return s, nil
}

// Epsilon returns the subdivision's fixed coordinate tolerance.
func (s *Subdivision) Epsilon() float64 {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	return s.eps
}

// SetEpsilon changes the tolerance. Only legal while the subdivision has
// no vertices yet; otherwise returns ErrEpsilonLocked.
func (s *Subdivision) SetEpsilon(eps float64) error {
	if eps < 0 {
		return ErrNegativeEpsilon
	}
	s.muVert.Lock()
	defer s.muVert.Unlock()
	if len(s.vertices) > 0 {
		return ErrEpsilonLocked
	}
	s.eps = eps
	return nil
}

// VertexCount returns the number of vertices.
func (s *Subdivision) VertexCount() int {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	return len(s.vertices)
}

// EdgeCount returns the number of half-edges (always even).
func (s *Subdivision) EdgeCount() int {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	return len(s.edges)
}

// FaceCount returns the number of faces, including the unbounded face.
func (s *Subdivision) FaceCount() int {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	return len(s.faces)
}

// Vertices returns all vertices in ascending lexicographic order.
func (s *Subdivision) Vertices() []*Vertex {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	out := make([]*Vertex, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Edges returns all half-edges ordered by key.
func (s *Subdivision) Edges() []*HalfEdge {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	out := make([]*HalfEdge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// Edge looks up a half-edge by key.
func (s *Subdivision) Edge(key int) (*HalfEdge, bool) {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	e, ok := s.edges[key]
	return e, ok
}

// Faces returns all faces ordered by key, including the unbounded face.
func (s *Subdivision) Faces() []*Face {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	out := make([]*Face, 0, len(s.faces))
	for _, f := range s.faces {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// Face looks up a face by key.
func (s *Subdivision) Face(key int) (*Face, bool) {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	f, ok := s.faces[key]
	return f, ok
}

// UnboundedFace returns the always-present face of key 0.
func (s *Subdivision) UnboundedFace() *Face {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	return s.faces[0]
}
