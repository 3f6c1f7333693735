// File: build.go — randomized incremental construction of the
// trapezoidal map.
package trapezoid

import (
	"math"
	"math/rand"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// Map is the built trapezoidal-map search structure for one
// subdivision. Its epsilon is fixed to the subdivision's at Build
// time; querying with a different tolerance is not supported — the
// epsilon used at query time must equal the build epsilon.
type Map struct {
	root      *Node
	eps       float64
	unbounded *core.Face
}

// Build constructs a Map over every full edge of s. Edge insertion
// order is randomized unless Ordered() is given; WithSeed/WithRand
// make the randomization reproducible.
func Build(s *core.Subdivision, opts ...Option) *Map {
	cfg := newConfig(opts...)
	m := &Map{
		root:      newLeaf(&Trapezoid{}),
		eps:       s.Epsilon(),
		unbounded: s.UnboundedFace(),
	}

	edges := canonicalEdges(s, m.eps)
	if !cfg.ordered {
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	}

	for _, h := range edges {
		m.insert(h)
	}
	return m
}

// canonicalEdges returns one half-edge per full edge of s, each
// reoriented (via its twin if necessary) so its origin precedes its
// destination in x.
func canonicalEdges(s *core.Subdivision, eps float64) []*core.HalfEdge {
	var out []*core.HalfEdge
	for _, h := range s.Edges() {
		if h.Twin().Key() < h.Key() {
			continue
		}
		if geom.CompareX(h.Origin().Point, h.Destination().Point, eps) > 0 {
			h = h.Twin()
		}
		out = append(out, h)
	}
	return out
}

// insert finds every trapezoid h crosses and replaces each with an
// above/below split.
func (m *Map) insert(h *core.HalfEdge) {
	left, right := h.Origin(), h.Destination()
	seg := h.Segment()

	// probe returns a point on seg more than eps past from, so descending
	// with it never ties with the vertex at from or an edge ending there.
	probe := func(from geom.Point) geom.Point {
		if seg.Start.X == seg.End.X {
			return geom.Point{X: from.X, Y: from.Y + math.Min((seg.End.Y-from.Y)/2, 4*m.eps+1e-9)}
		}
		x := from.X + math.Min((seg.End.X-from.X)/2, 4*m.eps+1e-9)
		return geom.Point{X: x, Y: yAtX(seg.Start, seg.End, x)}
	}
	path := []*Node{descendToLeaf(m.root, probe(left.Point), m.eps)}
	for {
		t := path[len(path)-1].trap
		if t.right == nil || geom.CompareX(t.right.Point, right.Point, m.eps) >= 0 {
			break
		}
		path = append(path, descendToLeaf(m.root, probe(t.right.Point), m.eps))
	}

	m.splitPath(path, h, left, right)
}

// splitPath replaces every trapezoid along path with an above/below
// pair bounded by h, wrapping the first/last pair in a vertex node
// when h's endpoint introduces a new x-coordinate for that trapezoid.
func (m *Map) splitPath(path []*Node, h *core.HalfEdge, left, right *core.Vertex) {
	var prevAbove, prevBelow *Trapezoid

	for i, pn := range path {
		t := pn.trap
		leftBound, rightBound := t.left, t.right
		if i == 0 {
			leftBound = left
		}
		if i == len(path)-1 {
			rightBound = right
		}

		aboveT := &Trapezoid{top: t.top, bottom: h, left: leftBound, right: rightBound}
		belowT := &Trapezoid{top: h, bottom: t.bottom, left: leftBound, right: rightBound}

		if i == 0 {
			aboveT.upperLeft, belowT.lowerLeft = t.upperLeft, t.lowerLeft
		} else {
			prevAbove.upperRight, aboveT.upperLeft = aboveT, prevAbove
			prevBelow.lowerRight, belowT.lowerLeft = belowT, prevBelow
		}
		if i == len(path)-1 {
			aboveT.upperRight, belowT.lowerRight = t.upperRight, t.lowerRight
		}

		edgeNode := &Node{kind: edgeKind, edge: h, above: newLeaf(aboveT), below: newLeaf(belowT)}
		subtreeRoot := edgeNode

		if i == 0 && !sameVertex(t.left, left, m.eps) {
			leftTrap := &Trapezoid{top: t.top, bottom: t.bottom, left: t.left, right: left,
				upperLeft: t.upperLeft, lowerLeft: t.lowerLeft}
			subtreeRoot = &Node{kind: vertexKind, vertex: left, left: newLeaf(leftTrap), right: edgeNode}
		}
		if i == len(path)-1 && !sameVertex(t.right, right, m.eps) {
			rightTrap := &Trapezoid{top: t.top, bottom: t.bottom, left: right, right: t.right,
				upperRight: t.upperRight, lowerRight: t.lowerRight}
			subtreeRoot = &Node{kind: vertexKind, vertex: right, left: subtreeRoot, right: newLeaf(rightTrap)}
		}

		*pn = *subtreeRoot
		prevAbove, prevBelow = aboveT, belowT
	}
}

// sameVertex reports whether a and b denote the same bound: both nil
// (both unbounded), or both non-nil and coincident within eps.
func sameVertex(a, b *core.Vertex, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Point.Equal(b.Point, eps)
}
