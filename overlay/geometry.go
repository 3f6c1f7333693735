// File: geometry.go — segment-level arrangement splitting. Breaks a
// flat list of segments (drawn from both overlay operands) at every
// pairwise crossing, producing a set with no interior intersections
// left for builder.FromLines to consume.
package overlay

import (
	"math"
	"sort"

	"github.com/gopherplane/dcel/geom"
)

// splitArrangement repeatedly finds one pairwise intersection requiring
// a split, replaces the two offending segments with their split pieces,
// and restarts the scan. Each split strictly increases total boundary
// length accounted for by distinct pieces while the input is finite, so
// the loop terminates.
func splitArrangement(segs []geom.Segment, eps float64) []geom.Segment {
	for {
		changed := false
		for i := 0; i < len(segs) && !changed; i++ {
			for j := i + 1; j < len(segs); j++ {
				a, b := segs[i], segs[j]
				in := geom.IntersectSegments(a, b, eps)
				if !in.Exists {
					continue
				}

				var pieces []geom.Segment
				switch in.Relation {
				case geom.Collinear:
					pieces = splitCollinearPair(a, b, eps)
				case geom.Divergent:
					pieces = splitDivergentPair(a, b, in)
				}
				if pieces == nil {
					continue
				}

				next := make([]geom.Segment, 0, len(segs)+len(pieces))
				next = append(next, segs[:i]...)
				next = append(next, segs[i+1:j]...)
				next = append(next, segs[j+1:]...)
				next = append(next, pieces...)
				segs = dedupeSegments(next, eps)
				changed = true
				break
			}
		}
		if !changed {
			return segs
		}
	}
}

// splitCollinearPair handles every collinear-overlap case in one pass:
// every endpoint of a and b is projected onto a's
// supporting line, sorted, and consecutive distinct points become the
// replacement pieces. Any sub-interval that is covered by only one of
// a/b survives as that operand's edge; any sub-interval covered by both
// becomes a single shared edge. Returns nil if a and b already form a
// minimal (non-reducible) pair — e.g. they merely touch at one shared
// endpoint — to avoid looping forever on a no-op split.
func splitCollinearPair(a, b geom.Segment, eps float64) []geom.Segment {
	dir := a.End.Sub(a.Start)
	norm := math.Hypot(dir.X, dir.Y)
	if norm == 0 {
		return nil
	}
	unit := dir.Scale(1 / norm)
	proj := func(p geom.Point) float64 { return p.Sub(a.Start).Dot(unit) }

	type tagged struct {
		p geom.Point
		t float64
	}
	pts := []tagged{
		{a.Start, proj(a.Start)},
		{a.End, proj(a.End)},
		{b.Start, proj(b.Start)},
		{b.End, proj(b.End)},
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })

	var pieces []geom.Segment
	for k := 0; k+1 < len(pts); k++ {
		p, q := pts[k].p, pts[k+1].p
		if p.Equal(q, eps) {
			continue
		}
		pieces = append(pieces, geom.Segment{Start: p, End: q})
	}
	if len(pieces) == 0 {
		return nil
	}
	if segmentSetEqual(pieces, []geom.Segment{a, b}, eps) {
		return nil
	}
	return pieces
}

// splitDivergentPair handles a proper (non-collinear) crossing. If the
// crossing point of the two supporting lines lies outside either
// segment, the segments do not meet and nothing is split. Otherwise
// each segment whose crossing point lies strictly between its endpoints
// is cut in two there; a segment whose crossing point falls on an
// endpoint is left whole.
func splitDivergentPair(a, b geom.Segment, in geom.Intersection) []geom.Segment {
	if in.Shared == nil {
		return nil
	}
	if in.First == geom.Before || in.First == geom.After || in.Second == geom.Before || in.Second == geom.After {
		return nil
	}
	p := *in.Shared
	splitA := in.First == geom.Between
	splitB := in.Second == geom.Between
	if !splitA && !splitB {
		return nil
	}

	var pieces []geom.Segment
	if splitA {
		pieces = append(pieces, geom.Segment{Start: a.Start, End: p}, geom.Segment{Start: p, End: a.End})
	} else {
		pieces = append(pieces, a)
	}
	if splitB {
		pieces = append(pieces, geom.Segment{Start: b.Start, End: p}, geom.Segment{Start: p, End: b.End})
	} else {
		pieces = append(pieces, b)
	}
	return pieces
}

// dedupeSegments drops zero-length segments and collapses exact
// (undirected, within epsilon) duplicates, keeping the first occurrence.
func dedupeSegments(segs []geom.Segment, eps float64) []geom.Segment {
	out := make([]geom.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Start.Equal(s.End, eps) {
			continue
		}
		dup := false
		for _, o := range out {
			if sameSeg(s, o, eps) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// sameSeg reports whether a and b share the same endpoint pair,
// regardless of direction, within epsilon.
func sameSeg(a, b geom.Segment, eps float64) bool {
	same := a.Start.Equal(b.Start, eps) && a.End.Equal(b.End, eps)
	swapped := a.Start.Equal(b.End, eps) && a.End.Equal(b.Start, eps)
	return same || swapped
}

// segmentSetEqual reports whether x and y contain the same two
// segments (as unordered endpoint pairs), in any order.
func segmentSetEqual(x, y []geom.Segment, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	used := make([]bool, len(y))
	for _, sx := range x {
		found := false
		for j, sy := range y {
			if used[j] {
				continue
			}
			if sameSeg(sx, sy, eps) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// checkNoCongruentAcrossOperands panics with ErrOverlayInvalidResult if
// any segment of segs1 exactly matches (within eps, either direction)
// a segment of segs2 — treated as a fatal, unrepresentable input rather
// than silently deduplicated.
func checkNoCongruentAcrossOperands(segs1, segs2 []geom.Segment, eps float64) {
	for _, a := range segs1 {
		for _, b := range segs2 {
			if sameSeg(a, b, eps) {
				panic(ErrOverlayInvalidResult)
			}
		}
	}
}
