// File: edit.go — incremental topological editors.
//
// AddEdge and MoveVertex return a sentinel error on a pre-check failure
// and leave the subdivision unmodified; RemoveVertex returns false
// instead; RemoveEdge, SplitEdge and TrySplitEdge run no pre-check. An
// editor that mutates state then calls rebuildFaces to bring face
// assignment back in sync
// (see api.go's rebuildFaces doc comment for why face updates are
// rebuilt wholesale rather than incrementally split/merged in place).
package builder

import (
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// AddEdge creates a new full edge from start to end if doing so
// preserves planarity. On success it returns the half-edge oriented
// from start to end. On failure it returns a sentinel error and leaves
// s unchanged.
func AddEdge(s *core.Subdivision, start, end geom.Point) (*core.HalfEdge, error) {
	eps := s.Epsilon()
	if start.Equal(end, eps) {
		return nil, ErrDegenerateEdge
	}

	startV, startExists := s.FindVertex(start)
	endV, endExists := s.FindVertex(end)

	var face *core.Face
	switch {
	case !startExists && !endExists:
		face = s.FindFace(start)
	case startExists && !endExists:
		face = s.FindFace(start)
	case !startExists && endExists:
		face = s.FindFace(end)
	default:
		fs, fe := s.FindFace(start), s.FindFace(end)
		if fs != fe {
			return nil, ErrFaceMismatch
		}
		face = fs
	}

	seg := geom.Segment{Start: start, End: end}
	for _, h := range faceBoundaryHalfEdges(face) {
		in := geom.IntersectSegments(seg, h.Segment(), eps)
		if !in.Exists {
			continue
		}
		if in.Relation == geom.Collinear && sameEndpoints(seg, h.Segment(), eps) {
			return nil, ErrDuplicateEdge
		}
		if in.First == geom.Between && in.Second == geom.Between {
			return nil, ErrCrossingEdge
		}
	}

	if startExists && endExists {
		if _, ok := s.FindEdge(startV, endV); ok {
			return nil, ErrDuplicateEdge
		}
	}

	if !startExists {
		startV, _ = s.NewVertex(start)
	}
	if !endExists {
		endV, _ = s.NewVertex(end)
	}
	h, _ := s.LinkEdge(startV, endV)
	rebuildFaces(s)
	return h, nil
}

// RemoveEdge deletes the full edge represented by h and rebuilds face
// assignment. RemoveEdge never fails: any half-edge obtained from s is
// always a legal removal target.
func RemoveEdge(s *core.Subdivision, h *core.HalfEdge) {
	s.UnlinkEdge(h)
	rebuildFaces(s)
}

// SplitEdge inserts a new vertex at p on h's underlying segment,
// replacing h (and its twin) with two full edges: origin-to-p and
// p-to-destination. Returns the half-edge oriented origin-to-p.
func SplitEdge(s *core.Subdivision, h *core.HalfEdge, p geom.Point) *core.HalfEdge {
	origin, dest := h.Origin(), h.Destination()
	s.UnlinkEdge(h)
	// UnlinkEdge drops an endpoint left without edges; put it back.
	origin, _ = s.NewVertex(origin.Point)
	dest, _ = s.NewVertex(dest.Point)
	mid, _ := s.NewVertex(p)
	first, _ := s.LinkEdge(origin, mid)
	s.LinkEdge(mid, dest)
	rebuildFaces(s)
	return first
}

// TrySplitEdge behaves like SplitEdge, except when p coincides with an
// existing vertex that is already connected to both of h's endpoints
// through other edges — in that case h is redundant (a triangle's
// third side duplicated by the split point) and is simply deleted.
// Returns (newHalfEdge, deleted): deleted is true when h was removed
// without inserting replacement edges, in which case newHalfEdge is nil.
func TrySplitEdge(s *core.Subdivision, h *core.HalfEdge, p geom.Point) (*core.HalfEdge, bool) {
	origin, dest := h.Origin(), h.Destination()
	if v, ok := s.FindVertex(p); ok && v != origin && v != dest {
		_, hasOrigin := s.FindEdge(origin, v)
		_, hasDest := s.FindEdge(v, dest)
		if hasOrigin && hasDest {
			s.UnlinkEdge(h)
			rebuildFaces(s)
			return nil, true
		}
	}
	return SplitEdge(s, h, p), false
}

// MoveVertex attempts to relocate v to p. It fails with ErrPointOccupied
// if p already holds a different vertex, or with ErrCrossingEdge if any
// edge incident to v would cross a non-incident edge after the move.
// On success the original vertex object is removed and replaced;
// callers must re-query the subdivision by coordinate to obtain the
// relocated vertex (MoveVertex returns it directly as a convenience,
// but any previously held reference to v is stale).
func MoveVertex(s *core.Subdivision, v *core.Vertex, p geom.Point) (*core.Vertex, error) {
	eps := s.Epsilon()
	if _, ok := s.PointOccupiedBy(p, v); ok {
		return nil, ErrPointOccupied
	}

	neighbors := neighborsOf(s, v)
	for _, n := range neighbors {
		candidate := geom.Segment{Start: p, End: n.Point}
		if crossesAnyExcept(s, candidate, v, n, eps) {
			return nil, ErrCrossingEdge
		}
	}

	for _, n := range neighbors {
		if h, ok := s.FindEdge(v, n); ok {
			s.UnlinkEdge(h)
		}
	}
	moved, _ := s.NewVertex(p)
	for _, n := range neighbors {
		n, _ = s.NewVertex(n.Point) // n may have been dropped by UnlinkEdge
		s.LinkEdge(moved, n)
	}
	rebuildFaces(s)
	return moved, nil
}

// RemoveVertex deletes v and joins its two incident edges into one,
// provided v has exactly two incident half-edges and the joined
// segment does not cross any other edge. Returns the joining half-edge
// and true on success; false (with s unchanged) otherwise.
func RemoveVertex(s *core.Subdivision, v *core.Vertex) (*core.HalfEdge, bool) {
	neighbors := neighborsOf(s, v)
	if len(neighbors) != 2 {
		return nil, false
	}
	eps := s.Epsilon()
	a, b := neighbors[0], neighbors[1]
	candidate := geom.Segment{Start: a.Point, End: b.Point}
	if crossesAnyExcept(s, candidate, v, nil, eps) {
		return nil, false
	}

	for _, n := range neighbors {
		if h, ok := s.FindEdge(v, n); ok {
			s.UnlinkEdge(h)
		}
	}
	// UnlinkEdge drops a neighbour left without edges; put it back.
	a, _ = s.NewVertex(a.Point)
	b, _ = s.NewVertex(b.Point)
	h, _ := s.LinkEdge(a, b)
	rebuildFaces(s)
	return h, true
}

// neighborsOf returns the distinct vertices adjacent to v.
func neighborsOf(s *core.Subdivision, v *core.Vertex) []*core.Vertex {
	var out []*core.Vertex
	for _, h := range s.EdgesByOrigin()[v] {
		out = append(out, h.Destination())
	}
	return out
}

// faceBoundaryHalfEdges returns every half-edge on f's outer and inner
// boundary cycles.
func faceBoundaryHalfEdges(f *core.Face) []*core.HalfEdge {
	var out []*core.HalfEdge
	if f.Outer() != nil {
		f.Outer().Cycle(func(h *core.HalfEdge) bool {
			out = append(out, h)
			return true
		})
	}
	for _, inner := range f.Inner() {
		inner.Cycle(func(h *core.HalfEdge) bool {
			out = append(out, h)
			return true
		})
	}
	return out
}

// sameEndpoints reports whether a and b share the same pair of
// endpoints, in either order, within epsilon.
func sameEndpoints(a, b geom.Segment, eps float64) bool {
	same := a.Start.Equal(b.Start, eps) && a.End.Equal(b.End, eps)
	swapped := a.Start.Equal(b.End, eps) && a.End.Equal(b.Start, eps)
	return same || swapped
}

// crossesAnyExcept reports whether seg properly crosses any half-edge
// of s not incident to excludeA or excludeB.
func crossesAnyExcept(s *core.Subdivision, seg geom.Segment, excludeA, excludeB *core.Vertex, eps float64) bool {
	for _, h := range s.Edges() {
		if h.Twin().Key() < h.Key() {
			continue // visit each full edge once
		}
		if incident(h, excludeA) || incident(h, excludeB) {
			continue
		}
		in := geom.IntersectSegments(seg, h.Segment(), eps)
		if in.Exists && in.First == geom.Between && in.Second == geom.Between {
			return true
		}
	}
	return false
}

// incident reports whether h has v as an endpoint.
func incident(h *core.HalfEdge, v *core.Vertex) bool {
	return v != nil && (h.Origin() == v || h.Destination() == v)
}
