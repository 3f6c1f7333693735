// File: methods_faces.go
// Role: face queries: point-location by linear scan over boundary
// polygons, polygon-to-face matching, and face key renumbering.
// A DCEL has no separate adjacency-list structure to query — adjacency
// here is the half-edge chain itself.
package core

import (
	"sort"

	"github.com/gopherplane/dcel/geom"
)

// FindFace returns the innermost face containing p, or the unbounded
// face if p lies outside every bounded face's outer boundary. Ties
// (p exactly on a boundary) resolve to the first face found during the
// scan in face-key order; use geom.PointInPolygon directly for
// boundary-aware queries.
func (s *Subdivision) FindFace(p geom.Point) *Face {
	for _, f := range s.Faces() {
		if f.Unbounded() || f.outer == nil {
			continue
		}
		poly := s.BoundaryPolygon(f)
		if geom.PointInPolygon(poly, p, s.eps) != geom.Outside {
			if !s.hasHoleContaining(f, p) {
				return f
			}
		}
	}
	return s.UnboundedFace()
}

// hasHoleContaining reports whether p falls strictly inside one of f's
// holes, in which case p belongs to whatever face fills that hole, not f.
func (s *Subdivision) hasHoleContaining(f *Face, p geom.Point) bool {
	for _, poly := range s.HolePolygons(f) {
		if geom.PointInPolygon(poly, p, s.eps) == geom.Inside {
			return true
		}
	}
	return false
}

// FindFaceByPolygon returns the face whose outer boundary traces the
// given closed polygon (same cyclic sequence of vertices, up to
// rotation, within epsilon). If verify is true, the match additionally
// requires that no other face's outer boundary also matches, returning
// false on an ambiguous match.
func (s *Subdivision) FindFaceByPolygon(points []geom.Point, verify bool) (*Face, bool) {
	var match *Face
	for _, f := range s.Faces() {
		if f.Unbounded() || f.outer == nil {
			continue
		}
		if polygonsMatch(s.BoundaryPolygon(f), points, s.eps) {
			if match != nil && verify {
				return nil, false
			}
			match = f
			if !verify {
				return match, true
			}
		}
	}
	if match == nil {
		return nil, false
	}
	return match, true
}

// polygonsMatch reports whether a and b describe the same cyclic
// sequence of points (in either winding direction), within epsilon.
func polygonsMatch(a, b []geom.Point, eps float64) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	n := len(a)
	for _, reversed := range []bool{false, true} {
		bb := b
		if reversed {
			bb = make([]geom.Point, n)
			for i, p := range b {
				bb[n-1-i] = p
			}
		}
		for shift := 0; shift < n; shift++ {
			ok := true
			for i := 0; i < n; i++ {
				if !a[i].Equal(bb[(i+shift)%n], eps) {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
	}
	return false
}

// RenumberFaces reassigns face keys to a contiguous range starting at
// 0 (the unbounded face keeps key 0), preserving the ascending order of
// the original keys.
func (s *Subdivision) RenumberFaces() {
	s.muEdgeFace.Lock()
	defer s.muEdgeFace.Unlock()

	all := make([]*Face, 0, len(s.faces))
	for _, f := range s.faces {
		if f.key != 0 {
			all = append(all, f)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].key < all[j].key })

	fresh := map[int]*Face{0: s.faces[0]}
	next := 1
	for _, f := range all {
		f.key = next
		fresh[next] = f
		next++
	}
	s.faces = fresh
	s.nextFaceKey = next
}
