// File: serialize.go — recover plain geometry from a subdivision,
// inverting FromLines/FromPolygons for the round-trip properties.
package builder

import (
	"sort"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// ToLines returns one segment per full edge of s, oriented from the
// lower-keyed half-edge's origin to its destination, ordered by key.
func ToLines(s *core.Subdivision) []geom.Segment {
	var out []geom.Segment
	for _, h := range s.Edges() {
		if h.Twin().Key() < h.Key() {
			continue
		}
		out = append(out, h.Segment())
	}
	return out
}

// ToPolygons returns the outer boundary of every bounded face, ordered
// by face key. Holes are not represented as separate polygons.
func ToPolygons(s *core.Subdivision) [][]geom.Point {
	faces := s.Faces()
	sort.Slice(faces, func(i, j int) bool { return faces[i].Key() < faces[j].Key() })

	var out [][]geom.Point
	for _, f := range faces {
		if f.Unbounded() {
			continue
		}
		out = append(out, s.BoundaryPolygon(f))
	}
	return out
}
