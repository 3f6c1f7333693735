// File: methods_clone.go
// Role: deep copy, structural equality, and invariant validation — the
// consistency checks a caller can run after a sequence of edits or
// after deserializing a subdivision built elsewhere.
package core

import (
	"fmt"

	"github.com/gopherplane/dcel/geom"
)

// Clone returns a deep copy of s: a fresh Subdivision with its own
// vertices, half-edges, and faces, wired identically but sharing no
// pointers with the original.
func (s *Subdivision) Clone() *Subdivision {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()

	out := &Subdivision{
		eps:         s.eps,
		epsLocked:   s.epsLocked,
		edges:       make(map[int]*HalfEdge, len(s.edges)),
		faces:       make(map[int]*Face, len(s.faces)),
		nextEdgeKey: s.nextEdgeKey,
		nextFaceKey: s.nextFaceKey,
	}

	vmap := make(map[*Vertex]*Vertex, len(s.vertices))
	out.vertices = make([]*Vertex, len(s.vertices))
	for i, v := range s.vertices {
		nv := &Vertex{Point: v.Point}
		vmap[v] = nv
		out.vertices[i] = nv
	}

	emap := make(map[*HalfEdge]*HalfEdge, len(s.edges))
	for key, h := range s.edges {
		nh := &HalfEdge{key: key, origin: vmap[h.origin]}
		emap[h] = nh
		out.edges[key] = nh
	}
	for _, h := range s.edges {
		nh := emap[h]
		nh.twin = emap[h.twin]
		if h.next != nil {
			nh.next = emap[h.next]
		}
		if h.prev != nil {
			nh.prev = emap[h.prev]
		}
	}
	for _, v := range s.vertices {
		if v.edge != nil {
			vmap[v].edge = emap[v.edge]
		}
	}

	fmap := make(map[*Face]*Face, len(s.faces))
	for key, f := range s.faces {
		nf := &Face{key: key}
		fmap[f] = nf
		out.faces[key] = nf
	}
	for _, f := range s.faces {
		nf := fmap[f]
		if f.outer != nil {
			nf.outer = emap[f.outer]
		}
		for _, h := range f.inner {
			nf.inner = append(nf.inner, emap[h])
		}
	}
	for _, h := range s.edges {
		emap[h].face = fmap[h.face]
	}

	return out
}

// StructureEquals reports whether s and other have isomorphic
// topology: the same vertex coordinates (within max(s.eps, other.eps))
// and, for every edge incident to a given coordinate pair, matching
// twin/next structure expressed in coordinates rather than keys — keys
// are an internal bookkeeping detail that are not stable across
// independent builds (FromLines vs. FromPolygons, or a subdivision
// before and after RenumberEdges) of the same shape, so comparing them
// directly would make isomorphic subdivisions compare unequal. It does
// not require identical key assignment for vertices, edges, or faces.
func (s *Subdivision) StructureEquals(other *Subdivision) bool {
	if s.VertexCount() != other.VertexCount() || s.EdgeCount() != other.EdgeCount() || s.FaceCount() != other.FaceCount() {
		return false
	}
	eps := s.eps
	if other.eps > eps {
		eps = other.eps
	}

	sv, ov := s.Vertices(), other.Vertices()
	for i := range sv {
		if !sv[i].Point.Equal(ov[i].Point, eps) {
			return false
		}
	}

	// Edges() returns each subdivision's half-edges sorted by key, and
	// keys are assigned independently by each build — position i in se
	// need not correspond to the same edge as position i in oe. Match
	// each half-edge in se against an as-yet-unmatched half-edge in oe
	// by coordinates instead of assuming the two orderings align.
	se, oe := s.Edges(), other.Edges()
	if len(se) != len(oe) {
		return false
	}
	unmatched := make([]*HalfEdge, len(oe))
	copy(unmatched, oe)

	for _, h := range se {
		matchIdx := -1
		for i, g := range unmatched {
			if g == nil {
				continue
			}
			if !h.origin.Point.Equal(g.origin.Point, eps) {
				continue
			}
			if !h.twin.origin.Point.Equal(g.twin.origin.Point, eps) {
				continue
			}
			if (h.next == nil) != (g.next == nil) {
				continue
			}
			if h.next != nil && !h.next.origin.Point.Equal(g.next.origin.Point, eps) {
				continue
			}
			matchIdx = i
			break
		}
		if matchIdx == -1 {
			return false
		}
		unmatched[matchIdx] = nil
	}
	return true
}

// Validate checks the five structural invariants of a consistent
// subdivision and returns the first violation found, wrapped with
// identifying context. A nil result means the subdivision is
// internally consistent.
func (s *Subdivision) Validate() error {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	s.muEdgeFace.RLock()
	defer s.muEdgeFace.RUnlock()

	// Property 1: closure — twin/next/previous form consistent pairs.
	for _, h := range s.edges {
		if h.twin == nil || h.twin.twin != h {
			return fmt.Errorf("%w: half-edge %d has no valid twin", ErrInvariantClosure, h.key)
		}
		if h.next == nil || h.next.prev != h {
			return fmt.Errorf("%w: half-edge %d has inconsistent next/previous", ErrInvariantClosure, h.key)
		}
		if h.twin.origin != h.next.origin {
			return fmt.Errorf("%w: half-edge %d violates twin.origin == next.origin", ErrInvariantClosure, h.key)
		}
	}

	// Property 2: cycle consistency — walking Next returns to the start
	// and every half-edge in a cycle shares one face.
	visited := make(map[*HalfEdge]bool, len(s.edges))
	for _, h := range s.edges {
		if visited[h] {
			continue
		}
		face := h.face
		steps := 0
		cur := h
		for {
			if visited[cur] {
				return fmt.Errorf("%w: cycle containing half-edge %d does not close", ErrInvariantCycle, h.key)
			}
			visited[cur] = true
			if cur.face != face {
				return fmt.Errorf("%w: cycle containing half-edge %d spans multiple faces", ErrInvariantCycle, h.key)
			}
			cur = cur.next
			steps++
			if cur == h {
				break
			}
			if steps > len(s.edges) {
				return fmt.Errorf("%w: cycle containing half-edge %d does not close", ErrInvariantCycle, h.key)
			}
		}
	}

	// Property 3: planarity — no two edges that don't already share a
	// vertex cross or overlap anywhere. Checked pairwise on each full
	// edge's segment, visited once via its lower-keyed half-edge.
	full := make([]*HalfEdge, 0, len(s.edges)/2)
	for _, h := range s.edges {
		if h.twin.key < h.key {
			continue
		}
		full = append(full, h)
	}
	for i := 0; i < len(full); i++ {
		for j := i + 1; j < len(full); j++ {
			a, b := full[i], full[j]
			if sharesEndpoint(a, b) {
				continue
			}
			in := geom.IntersectSegments(a.Segment(), b.Segment(), s.eps)
			if !in.Exists {
				continue
			}
			onA := in.First != geom.Before && in.First != geom.After
			onB := in.Second != geom.Before && in.Second != geom.After
			if in.Relation == geom.Collinear || (onA && onB) {
				return fmt.Errorf("%w: half-edges %d and %d cross at a non-vertex point", ErrInvariantPlanarity, a.key, b.key)
			}
		}
	}

	// Property 4: vertex ordering — outgoing half-edges at each vertex
	// have strictly increasing clockwise angle around the rotation.
	for _, v := range s.vertices {
		outs := outgoingLocked(v)
		for i := 1; i < len(outs); i++ {
			if cwAngle(outs[i-1]) > cwAngle(outs[i])+1e-12 {
				return fmt.Errorf("%w: vertex at (%g,%g) has non-monotonic rotation", ErrInvariantVertexOrder, v.Point.X, v.Point.Y)
			}
		}
	}

	// Property 5: key uniqueness.
	edgeKeys := make(map[int]bool, len(s.edges))
	for k, h := range s.edges {
		if k != h.key || edgeKeys[k] {
			return fmt.Errorf("%w: duplicate or mismatched edge key %d", ErrInvariantKeys, k)
		}
		edgeKeys[k] = true
	}
	faceKeys := make(map[int]bool, len(s.faces))
	for k, f := range s.faces {
		if k != f.key || faceKeys[k] {
			return fmt.Errorf("%w: duplicate or mismatched face key %d", ErrInvariantKeys, k)
		}
		faceKeys[k] = true
	}

	return nil
}

// sharesEndpoint reports whether full edges a and b have a common
// endpoint vertex.
func sharesEndpoint(a, b *HalfEdge) bool {
	return a.origin == b.origin || a.origin == b.twin.origin ||
		a.twin.origin == b.origin || a.twin.origin == b.twin.origin
}
