// File: locate.go — brute-force point location.
package locate

import (
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// Locate finds the face containing p, then tests every half-edge on
// that face's outer and inner boundaries for vertex or edge
// coincidence, returning the most specific match. It runs in O(F + B)
// time, where F is the face count and B the total boundary length —
// adequate for a reference/verification role (no index is built;
// compare against trapezoid.Map for O(log n) queries on a fixed
// subdivision). The unbounded face gets no special treatment: it can
// have inner (hole) boundaries of its own — e.g. a dangling edge with
// no enclosing cycle — that still need testing for coincidence.
func Locate(s *core.Subdivision, p geom.Point) Location {
	eps := s.Epsilon()
	f := s.FindFace(p)

	boundary := boundaryHalfEdges(f)
	for _, h := range boundary {
		if p.Equal(h.Origin().Point, eps) {
			return AtVertexLocation(h.Origin())
		}
	}
	for _, h := range boundary {
		if pointOnSegment(h.Segment(), p, eps) {
			return AtEdgeLocation(canonicalOrigin(h))
		}
	}
	return AtFaceLocation(f)
}

func boundaryHalfEdges(f *core.Face) []*core.HalfEdge {
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

// canonicalOrigin returns whichever of h, h.Twin() has the
// lexicographically smaller origin (CompareY order, matching the
// subdivision's own vertex ordering).
func canonicalOrigin(h *core.HalfEdge) *core.HalfEdge {
	if geom.CompareYExact(h.Origin().Point, h.Destination().Point) <= 0 {
		return h
	}
	return h.Twin()
}

// pointOnSegment reports whether p lies within eps of the closed
// segment seg.
func pointOnSegment(seg geom.Segment, p geom.Point, eps float64) bool {
	length := seg.Start.Dist(seg.End)
	if length == 0 {
		return p.Equal(seg.Start, eps)
	}
	dir := seg.Vec().Scale(1 / length)
	t := p.Sub(seg.Start).Dot(dir)
	if t < -eps || t > length+eps {
		return false
	}
	proj := seg.Start.Add(dir.Scale(t))
	return p.Dist(proj) <= eps
}
