// File: descent.go — DAG descent shared by Build (locating the start
// and intersected trapezoids of a new edge) and Query.
package trapezoid

import (
	"math"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// side classifies a point against an oriented edge's supporting line.
type side int

const (
	below side = iota
	above
	onLine
)

// edgeSide reports where p falls relative to h's line, h assumed
// oriented left-to-right (origin precedes destination under
// geom.CompareX, so a vertical edge points up).
func edgeSide(h *core.HalfEdge, p geom.Point, eps float64) side {
	seg := h.Segment()
	length := seg.Start.Dist(seg.End)
	cross := geom.Cross(seg.Start, seg.End, p)
	tol := eps * math.Max(length, 1)
	switch {
	case cross > tol:
		return above
	case cross < -tol:
		return below
	default:
		return onLine
	}
}

// descendToLeaf walks from n to the trapezoid leaf containing p,
// breaking ties silently: p on a vertex's x (CompareX <= 0) takes the
// left branch, p exactly on an edge's line takes the above branch. Used
// internally by
// Build, which only needs *a* trapezoid at p, not an exact-match
// report — Query implements its own descent that stops to report
// vertex/edge coincidence instead of breaking ties silently.
func descendToLeaf(n *Node, p geom.Point, eps float64) *Node {
	for n.kind != leafKind {
		switch n.kind {
		case vertexKind:
			if geom.CompareX(p, n.vertex.Point, eps) <= 0 {
				n = n.left
			} else {
				n = n.right
			}
		case edgeKind:
			if edgeSide(n.edge, p, eps) == below {
				n = n.below
			} else {
				n = n.above
			}
		}
	}
	return n
}

// yAtX linearly interpolates the line through start and end at x. For
// a vertical line (start.X == end.X) it returns start.Y.
func yAtX(start, end geom.Point, x float64) float64 {
	dx := end.X - start.X
	if dx == 0 {
		return start.Y
	}
	t := (x - start.X) / dx
	return start.Y + t*(end.Y-start.Y)
}
