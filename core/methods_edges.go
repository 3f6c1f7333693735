// File: methods_edges.go
// Role: half-edge queries that go beyond the raw catalog lookup in
// types.go: locating the half-edge between two vertices, grouping
// half-edges by origin in their clockwise rotation, nearest-edge
// search, and post-hoc key renumbering.
package core

import (
	"sort"

	"github.com/gopherplane/dcel/geom"
)

// FindEdge returns the half-edge from origin to dest, if one exists.
func (s *Subdivision) FindEdge(origin, dest *Vertex) (*HalfEdge, bool) {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	for _, h := range outgoingLocked(origin) {
		if h.twin.origin == dest {
			return h, true
		}
	}
	return nil, false
}

// EdgesByOrigin returns, for every vertex that has at least one
// incident half-edge, the half-edges originating there in clockwise
// rotation order. Vertices are visited in catalog (lexicographic)
// order.
func (s *Subdivision) EdgesByOrigin() map[*Vertex][]*HalfEdge {
	s.muVert.RLock()
	vs := make([]*Vertex, len(s.vertices))
	copy(vs, s.vertices)
	s.muVert.RUnlock()

	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()
	out := make(map[*Vertex][]*HalfEdge, len(vs))
	for _, v := range vs {
		if v.edge != nil {
			out[v] = outgoingLocked(v)
		}
	}
	return out
}

// FindNearestEdge returns the half-edge whose underlying segment is
// closest to p, measured by perpendicular (or endpoint) distance, and
// the distance itself. Each full edge is considered once (via its
// lower-keyed half-edge). Returns false if the subdivision has no edges.
func (s *Subdivision) FindNearestEdge(p geom.Point) (*HalfEdge, float64, bool) {
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()

	var best *HalfEdge
	bestDist := 0.0
	for _, h := range s.edges {
		if h.twin.key < h.key {
			continue // visit each full edge via its lower-keyed half-edge
		}
		d := distanceToSegment(p, h.Segment())
		if best == nil || d < bestDist {
			best, bestDist = h, d
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestDist, true
}

// distanceToSegment returns the shortest Euclidean distance from p to
// the closed segment seg.
func distanceToSegment(p geom.Point, seg geom.Segment) float64 {
	d := seg.End.Sub(seg.Start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Dist(seg.Start)
	}
	t := p.Sub(seg.Start).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := seg.Start.Add(d.Scale(t))
	return p.Dist(proj)
}

// RenumberEdges reassigns half-edge keys to a contiguous range starting
// at 0, preserving each full edge's twin pairing order (a half-edge and
// its twin always receive consecutive keys, lower one first), and
// preserving the ascending order of the original keys.
func (s *Subdivision) RenumberEdges() {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()

	all := make([]*HalfEdge, 0, len(s.edges))
	for _, h := range s.edges {
		all = append(all, h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].key < all[j].key })

	fresh := make(map[int]*HalfEdge, len(all))
	next := 0
	seen := make(map[*HalfEdge]bool, len(all))
	for _, h := range all {
		if seen[h] {
			continue
		}
		lo, hi := h, h.twin
		if lo.key > hi.key {
			lo, hi = hi, lo
		}
		lo.key = next
		next++
		hi.key = next
		next++
		fresh[lo.key] = lo
		fresh[hi.key] = hi
		seen[lo] = true
		seen[hi] = true
	}
	s.edges = fresh
	s.nextEdgeKey = next
}
