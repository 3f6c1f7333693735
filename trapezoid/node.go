// File: node.go — the DAG's node and trapezoid types.
package trapezoid

import "github.com/gopherplane/dcel/core"

// kind tags which of the three node shapes a Node currently holds.
type kind int

const (
	leafKind kind = iota
	vertexKind
	edgeKind
)

// Node is one vertex of the trapezoidal-map DAG. Exactly the fields
// matching its kind are meaningful; a Node is mutated in place when
// the trapezoid it leads to is replaced, so every existing pointer to
// it (it may have more than one parent, hence "DAG") observes the
// replacement automatically.
type Node struct {
	kind kind

	trap *Trapezoid // leafKind

	vertex *core.Vertex // vertexKind: splits on vertex.Point.X
	left   *Node        // vertexKind: query x <= vertex.X
	right  *Node        // vertexKind: query x >  vertex.X

	edge  *core.HalfEdge // edgeKind: oriented left-to-right (origin precedes dest under geom.CompareX)
	above *Node          // edgeKind: query point above edge's line
	below *Node          // edgeKind: query point at/below edge's line
}

// Trapezoid is a leaf region of the map: bounded above by top, below
// by bottom, and left/right by vertex (nil on any side means
// unbounded in that direction).
type Trapezoid struct {
	top, bottom *core.HalfEdge
	left, right *core.Vertex

	upperLeft, upperRight *Trapezoid
	lowerLeft, lowerRight *Trapezoid

	leaf *Node // the Node currently wrapping this trapezoid
}

// newLeaf allocates a leaf Node for t and records it as t's current
// wrapper.
func newLeaf(t *Trapezoid) *Node {
	n := &Node{kind: leafKind, trap: t}
	t.leaf = n
	return n
}

// faceOf returns the face t belongs to. Edges are oriented left to
// right and a half-edge's face lies on its left, so that is the face
// of the top edge's twin, falling back to the bottom edge's own face,
// falling back to unbounded when both bounds are absent.
func (t *Trapezoid) faceOf(unbounded *core.Face) *core.Face {
	switch {
	case t.top != nil:
		return t.top.Twin().Face()
	case t.bottom != nil:
		return t.bottom.Face()
	default:
		return unbounded
	}
}
