// File: api.go
// Role: low-level, unchecked topology primitives used by the builder
// package (and by this package's tests) to mutate a Subdivision's raw
// half-edge/vertex/face storage.
//
// These primitives perform no planarity or intersection checks — that
// validation belongs to package builder. What lives here is only the
// bookkeeping required to keep the DCEL invariants intact: twin
// pairing, angular vertex-chain splicing, and face back-pointers.
package core

import "github.com/gopherplane/dcel/geom"

// NewVertex returns the vertex at p, creating it if none exists within
// epsilon. The second result reports whether a new vertex was created.
func (s *Subdivision) NewVertex(p geom.Point) (*Vertex, bool) {
	s.muVert.Lock()
	defer s.muVert.Unlock()
	return s.findOrInsertVertexLocked(p)
}

// FindVertex returns the vertex at p within epsilon, if any.
func (s *Subdivision) FindVertex(p geom.Point) (*Vertex, bool) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	idx, ok := s.searchVertexLocked(p)
	if !ok {
		return nil, false
	}
	return s.vertices[idx], true
}

// LinkEdge creates a new twin half-edge pair from origin to dest,
// splicing each half-edge into the angular cyclic order of half-edges
// already incident to its origin. Both half-edges are initially
// assigned to the unbounded face; the caller (builder) is
// responsible for correcting face
// assignment once cycles are (re)classified. LinkEdge performs no
// planarity checks.
func (s *Subdivision) LinkEdge(origin, dest *Vertex) (*HalfEdge, *HalfEdge) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()

	unbounded := s.faces[0]
	e := &HalfEdge{key: s.nextEdgeKey, origin: origin, face: unbounded}
	s.nextEdgeKey++
	t := &HalfEdge{key: s.nextEdgeKey, origin: dest, face: unbounded}
	s.nextEdgeKey++
	e.twin, t.twin = t, e

	s.edges[e.key] = e
	s.edges[t.key] = t

	s.spliceIn(e)
	s.spliceIn(t)

	return e, t
}

// UnlinkEdge removes the full edge represented by e (e and e.Twin())
// from the vertex chains and the edge catalog. If an endpoint loses its
// last incident half-edge, that vertex is also removed. UnlinkEdge
// performs no face-merging; callers update face topology separately.
func (s *Subdivision) UnlinkEdge(e *HalfEdge) {
	t := e.twin

	s.muEdgeFace.Lock()
	s.spliceOut(e)
	s.spliceOut(t)
	delete(s.edges, e.key)
	delete(s.edges, t.key)
	s.muEdgeFace.Unlock()

	s.removeVertexIfIsolated(e.origin)
	s.removeVertexIfIsolated(t.origin)
}

// NewFace allocates a new face with the next monotonic key.
func (s *Subdivision) NewFace() *Face {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	f := &Face{key: s.nextFaceKey}
	s.nextFaceKey++
	s.faces[f.key] = f
	return f
}

// DeleteFace removes f from the catalog. f must not be the unbounded
// face (key 0).
func (s *Subdivision) DeleteFace(f *Face) {
	if f.key == 0 {
		return
	}
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	delete(s.faces, f.key)
}

// SetFace assigns f as the incident face of every half-edge in e's
// boundary cycle.
func (s *Subdivision) SetFace(e *HalfEdge, f *Face) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	e.Cycle(func(he *HalfEdge) bool {
		he.face = f
		return true
	})
}

// SetOuter sets f's outer boundary half-edge.
func (s *Subdivision) SetOuter(f *Face, e *HalfEdge) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	f.outer = e
}

// AddInner appends e as one of f's inner-boundary (hole) half-edges.
func (s *Subdivision) AddInner(f *Face, e *HalfEdge) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	f.inner = append(f.inner, e)
}

// RemoveInner removes e from f's inner-boundary list, if present.
func (s *Subdivision) RemoveInner(f *Face, e *HalfEdge) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	for i, he := range f.inner {
		if he == e {
			f.inner = append(f.inner[:i], f.inner[i+1:]...)
			return
		}
	}
}

// ClearInner empties f's inner-boundary list.
func (s *Subdivision) ClearInner(f *Face) {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()
	f.inner = nil
}

// SpliceNextPrev rewires the boundary chain so that a.Next() == b and
// b.Previous() == a. No other package of this module calls it; this
// package's tests use it to thread a cycle by hand.
func (s *Subdivision) SpliceNextPrev(a, b *HalfEdge) {
	a.next = b
	b.prev = a
}

// PointOccupiedBy returns the vertex already at p within epsilon, other
// than exclude, if any. Used by callers validating a proposed vertex
// relocation before committing to it.
func (s *Subdivision) PointOccupiedBy(p geom.Point, exclude *Vertex) (*Vertex, bool) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	idx, ok := s.searchVertexLocked(p)
	if !ok {
		return nil, false
	}
	if v := s.vertices[idx]; v != exclude {
		return v, true
	}
	return nil, false
}
