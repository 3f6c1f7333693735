package cyclefind

import (
	"sort"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// sweepState encapsulates the containment-sweep bookkeeping, mirroring
// the walker-plus-result shape used for graph traversals elsewhere in
// this module: one struct carrying the input, working state, and
// accumulated output across a single pass.
type sweepState struct {
	s         *core.Subdivision
	eps       float64
	edgeCycle map[*core.HalfEdge]*Cycle
	result    *Result
}

// Find partitions every half-edge of s into boundary cycles and
// classifies each one, linking inner cycles to their containing outer
// (or inner) cycle via Cycle.Next.
//
// Simplification note (recorded alongside the vertex-chain splicing
// simplification in core): the live-edge set during the containment
// sweep is an unsorted list that every pivot query scans in full, rather
// than an incremental order-statistics structure. Both reach the
// same nesting result; the incremental form is a constant-factor
// optimization this implementation forgoes for clarity, since a sweep
// over the modest vertex counts place DCELs typically reach stays fast
// regardless.
func Find(s *core.Subdivision) *Result {
	st := &sweepState{
		s:         s,
		eps:       s.Epsilon(),
		edgeCycle: make(map[*core.HalfEdge]*Cycle),
		result:    &Result{},
	}
	st.traverse()
	st.sweep()
	return st.result
}

// traverse is stage one: partition all half-edges into cycles and
// classify each as Inner or Outer.
func (st *sweepState) traverse() {
	visited := make(map[*core.HalfEdge]bool)
	for _, h := range st.s.Edges() {
		if visited[h] {
			continue
		}
		c := &Cycle{}
		allTwinsInCycle := true
		cur := h
		members := make(map[*core.HalfEdge]bool)
		for {
			visited[cur] = true
			members[cur] = true
			c.Edges = append(c.Edges, cur)
			if c.Pivot == nil || geom.CompareY(cur.Origin().Point, c.Pivot.Point, st.eps) < 0 {
				c.Pivot = cur.Origin()
			}
			cur = cur.Next()
			if cur == h {
				break
			}
		}
		for _, e := range c.Edges {
			if !members[e.Twin()] {
				allTwinsInCycle = false
				break
			}
		}

		if allTwinsInCycle {
			c.Orientation = Inner
		} else {
			pivotEdge := edgeAtOrigin(c.Edges, c.Pivot)
			turn := geom.Cross(pivotEdge.Previous().Origin().Point, pivotEdge.Origin().Point, pivotEdge.Next().Origin().Point)
			if turn > st.eps {
				c.Orientation = Outer
			} else {
				c.Orientation = Inner
			}
		}

		for _, e := range c.Edges {
			st.edgeCycle[e] = c
		}
		if c.Orientation == Outer {
			st.result.Outer = append(st.result.Outer, c)
		} else {
			st.result.Inner = append(st.result.Inner, c)
		}
	}
}

// edgeAtOrigin returns the half-edge in edges whose origin is v.
func edgeAtOrigin(edges []*core.HalfEdge, v *core.Vertex) *core.HalfEdge {
	for _, e := range edges {
		if e.Origin() == v {
			return e
		}
	}
	return edges[0]
}

// liveEntry is one half-edge currently crossing the sweep line.
type liveEntry struct {
	he    *core.HalfEdge
	cycle *Cycle
}

// sweep is stage two: the containment sweep that links each inner
// cycle's pivot to its enclosing cycle, if any.
func (st *sweepState) sweep() {
	events := st.s.Vertices()
	sort.Slice(events, func(i, j int) bool {
		return geom.CompareY(events[i].Point, events[j].Point, st.eps) < 0
	})

	pivotOf := make(map[*core.Vertex][]*Cycle)
	for _, c := range st.result.Inner {
		pivotOf[c.Pivot] = append(pivotOf[c.Pivot], c)
	}

	var live []liveEntry

	for _, v := range events {
		// Query: for every inner cycle pivoting at v, find the nearest
		// live half-edge to the left and adopt its cycle as container.
		for _, c := range pivotOf[v] {
			if nearest := nearestLeft(live, v.Point, st.eps); nearest != nil {
				c.Next = nearest.cycle
			}
		}

		// Remove edges whose other endpoint is lexicographically
		// smaller than v (already processed).
		var kept []liveEntry
		for _, le := range live {
			other := otherEndpoint(le.he, v)
			if geom.CompareY(other.Point, v.Point, st.eps) < 0 {
				continue
			}
			kept = append(kept, le)
		}
		live = kept

		// Insert edges whose other endpoint is lexicographically
		// greater than v.
		for _, h := range outgoingHalfEdges(st.s, v) {
			other := h.Destination()
			if geom.CompareY(other.Point, v.Point, st.eps) <= 0 {
				continue
			}
			downward := canonicalDownward(h)
			live = append(live, liveEntry{he: downward, cycle: st.edgeCycle[downward]})
		}
	}
}

// canonicalDownward returns whichever half-edge of h's full edge has
// its origin lexicographically above its destination — the
// "downward-pointing" representative the sweep tracks.
func canonicalDownward(h *core.HalfEdge) *core.HalfEdge {
	if geom.CompareYExact(h.Origin().Point, h.Destination().Point) > 0 {
		return h
	}
	return h.Twin()
}

// otherEndpoint returns the endpoint of h's full edge that is not v.
func otherEndpoint(h *core.HalfEdge, v *core.Vertex) *core.Vertex {
	if h.Origin() == v {
		return h.Destination()
	}
	return h.Origin()
}

// outgoingHalfEdges returns every half-edge originating at v.
func outgoingHalfEdges(s *core.Subdivision, v *core.Vertex) []*core.HalfEdge {
	var out []*core.HalfEdge
	h := v.Edge()
	if h == nil {
		return nil
	}
	start := h
	for {
		out = append(out, h)
		h = h.Twin().Next()
		if h == start {
			break
		}
	}
	return out
}

// xAtY returns the x-coordinate at which h's supporting line crosses
// horizontal level y. Horizontal edges report their destination's x,
// per the sweep's left-endpoint tie-break rule.
func xAtY(h *core.HalfEdge, y float64) float64 {
	seg := h.Segment()
	if seg.Start.Y == seg.End.Y {
		return seg.End.X
	}
	t := (y - seg.Start.Y) / (seg.End.Y - seg.Start.Y)
	return seg.Start.X + t*(seg.End.X-seg.Start.X)
}

// nearestLeft returns the live entry whose x-intersection at p.Y is
// closest to, but not past, p.X, breaking ties by half-edge key for
// determinism.
func nearestLeft(live []liveEntry, p geom.Point, eps float64) *liveEntry {
	var best *liveEntry
	bestX := 0.0
	for i := range live {
		x := xAtY(live[i].he, p.Y)
		if x > p.X-eps {
			continue
		}
		if best == nil || x > bestX || (x == bestX && live[i].he.Key() > best.he.Key()) {
			entry := live[i]
			best = &entry
			bestX = x
		}
	}
	return best
}
