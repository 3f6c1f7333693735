// File: view.go
// Role: derived, read-only polygon views of a face's boundary cycles.
// These do not mutate the subdivision; they materialize geom.Point
// slices by walking the half-edge chains already present.
package core

import "github.com/gopherplane/dcel/geom"

// BoundaryPolygon returns the ordered vertex coordinates of f's outer
// boundary cycle, or nil if f is unbounded or has no outer boundary yet.
func (s *Subdivision) BoundaryPolygon(f *Face) []geom.Point {
	if f.outer == nil {
		return nil
	}
	var out []geom.Point
	f.outer.Cycle(func(h *HalfEdge) bool {
		out = append(out, h.Origin().Point)
		return true
	})
	return out
}

// HolePolygons returns the ordered vertex coordinates of each of f's
// inner (hole) boundary cycles, one slice per hole.
func (s *Subdivision) HolePolygons(f *Face) [][]geom.Point {
	out := make([][]geom.Point, 0, len(f.inner))
	for _, inner := range f.inner {
		var poly []geom.Point
		inner.Cycle(func(h *HalfEdge) bool {
			poly = append(poly, h.Origin().Point)
			return true
		})
		out = append(out, poly)
	}
	return out
}
