// File: methods_vertices.go
// Role: vertex catalog lookup (binary search over the epsilon-ordered
// catalog) and the angular vertex-chain insertion/removal subroutine
// that keeps HalfEdge.Next/Previous consistent with the clockwise
// rotation invariant around each vertex.
//
// Simplification note: rather than locating the insertion slot by
// walking incrementally from a reference half-edge along
// twin.next/previous.twin and stopping as soon as the signed angle
// crosses zero, this file collects the vertex's existing outgoing
// half-edges (O(d) where d is the vertex degree — bounded in practice)
// and re-sorts by angle on every insertion. Both produce the identical
// final rotation; the walk is an optimization this implementation
// trades for simplicity and gives up only a constant factor, since
// vertex degree in a planar subdivision is small.
package core

import (
	"math"
	"sort"

	"github.com/gopherplane/dcel/geom"
)

// searchVertexLocked returns the index of the vertex at p (within
// epsilon) in the sorted catalog, or the insertion point and false if
// absent. Caller must hold muVert.
func (s *Subdivision) searchVertexLocked(p geom.Point) (int, bool) {
	n := len(s.vertices)
	i := sort.Search(n, func(i int) bool {
		return geom.CompareY(s.vertices[i].Point, p, s.eps) >= 0
	})
	if i < n && geom.CompareY(s.vertices[i].Point, p, s.eps) == 0 {
		return i, true
	}
	return i, false
}

// findOrInsertVertexLocked returns the vertex at p, creating and
// splicing one into the sorted catalog if absent. Caller must hold
// muVert (write lock, since this may mutate the catalog).
func (s *Subdivision) findOrInsertVertexLocked(p geom.Point) (*Vertex, bool) {
	idx, ok := s.searchVertexLocked(p)
	if ok {
		return s.vertices[idx], false
	}
	v := &Vertex{Point: p}
	s.vertices = append(s.vertices, nil)
	copy(s.vertices[idx+1:], s.vertices[idx:])
	s.vertices[idx] = v
	return v, true
}

// removeVertexIfIsolated deletes v from the catalog once it has no
// remaining incident half-edge.
func (s *Subdivision) removeVertexIfIsolated(v *Vertex) {
	if v.edge != nil {
		return
	}
	s.muVert.Lock()
	defer s.muVert.Unlock()
	idx, ok := s.searchVertexLocked(v.Point)
	if !ok {
		return
	}
	s.vertices = append(s.vertices[:idx], s.vertices[idx+1:]...)
}

// FindNearestVertex returns the catalog vertex closest to p by
// Euclidean distance. Returns false if the subdivision has no vertices.
// Complexity: O(V) — a linear scan, since the catalog is ordered for
// lookup-by-coordinate, not for nearest-neighbor search; no dedicated
// spatial index backs this query.
func (s *Subdivision) FindNearestVertex(p geom.Point) (*Vertex, bool) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	if len(s.vertices) == 0 {
		return nil, false
	}
	best := s.vertices[0]
	bestDist := p.Dist(best.Point)
	for _, v := range s.vertices[1:] {
		if d := p.Dist(v.Point); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, true
}

// rotNext returns the next outgoing half-edge at h.Origin() in
// clockwise order: h.Twin().Next().
func rotNext(h *HalfEdge) *HalfEdge { return h.twin.next }

// cwAngle returns h's direction angle, parametrized so that it
// increases going clockwise in math (y-up) orientation, in [0, 2*Pi).
func cwAngle(h *HalfEdge) float64 {
	d := h.twin.origin.Point.Sub(h.origin.Point)
	a := math.Mod(2*math.Pi-math.Atan2(d.Y, d.X), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// outgoingLocked returns every half-edge whose origin is v, in their
// current clockwise rotation order. Caller must hold muEdgeFace.
func outgoingLocked(v *Vertex) []*HalfEdge {
	if v.edge == nil {
		return nil
	}
	out := []*HalfEdge{v.edge}
	for cur := rotNext(v.edge); cur != v.edge; cur = rotNext(cur) {
		out = append(out, cur)
	}
	return out
}

// spliceIn inserts the freshly created half-edge h (h.Origin() already
// set, h.Twin() already set, h.Next()/Previous() still zero) into its
// origin's clockwise rotation.
func (s *Subdivision) spliceIn(h *HalfEdge) {
	v := h.origin
	if v.edge == nil {
		h.twin.next = h
		h.prev = h.twin
		v.edge = h
		return
	}
	outs := append(outgoingLocked(v), h)
	sort.Slice(outs, func(i, j int) bool { return cwAngle(outs[i]) < cwAngle(outs[j]) })
	relink(outs)
	v.edge = outs[0]
}

// spliceOut removes h from its origin's clockwise rotation.
func (s *Subdivision) spliceOut(h *HalfEdge) {
	v := h.origin
	outs := outgoingLocked(v)
	filtered := outs[:0]
	for _, o := range outs {
		if o != h {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		v.edge = nil
		return
	}
	relink(filtered)
	v.edge = filtered[0]
}

// relink re-threads Next/Previous across a full rotation given in
// clockwise order.
func relink(outs []*HalfEdge) {
	n := len(outs)
	for i := 0; i < n; i++ {
		cur := outs[i]
		nxt := outs[(i+1)%n]
		cur.twin.next = nxt
		nxt.prev = cur.twin
	}
}
