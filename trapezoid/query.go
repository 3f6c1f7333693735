// File: query.go — O(log n) point location over the trapezoidal map.
package trapezoid

import (
	"github.com/gopherplane/dcel/geom"
	"github.com/gopherplane/dcel/locate"
)

// Query descends the DAG once, reporting the most specific match: a
// vertex or edge coincidence if p lands exactly on one (within the
// build epsilon), otherwise the face of the trapezoid p falls inside.
func (m *Map) Query(p geom.Point) locate.Location {
	n := m.root
	for n.kind != leafKind {
		switch n.kind {
		case vertexKind:
			c := geom.CompareX(p, n.vertex.Point, m.eps)
			switch {
			case c == 0:
				return locate.AtVertexLocation(n.vertex)
			case c < 0:
				n = n.left
			default:
				n = n.right
			}
		case edgeKind:
			switch edgeSide(n.edge, p, m.eps) {
			case onLine:
				return locate.AtEdgeLocation(n.edge)
			case above:
				n = n.above
			default:
				n = n.below
			}
		}
	}
	return locate.AtFaceLocation(n.trap.faceOf(m.unbounded))
}
