package geom

import "sort"

// ConvexHull computes the convex hull of points via a Graham scan in
// O(n log n). Duplicate points (within eps) and collinear interior
// points are filtered from the result. The returned ring is ordered
// counter-clockwise and does not repeat its first point.
func ConvexHull(points []Point, eps float64) []Point {
	uniq := dedupe(points, eps)
	if len(uniq) <= 2 {
		return uniq
	}

	pivot := uniq[0]
	for _, p := range uniq[1:] {
		if CompareY(p, pivot, eps) < 0 {
			pivot = p
		}
	}

	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i] == pivot {
			return true
		}
		if uniq[j] == pivot {
			return false
		}
		c := Cross(pivot, uniq[i], uniq[j])
		if sign(c, eps) != 0 {
			return c > 0
		}
		return pivot.Dist(uniq[i]) < pivot.Dist(uniq[j])
	})

	stack := make([]Point, 0, len(uniq))
	for _, p := range uniq {
		for len(stack) >= 2 && sign(Cross(stack[len(stack)-2], stack[len(stack)-1], p), eps) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack
}

// dedupe removes points that coincide within eps, preserving the first
// occurrence's position in the input order.
func dedupe(points []Point, eps float64) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.Equal(q, eps) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
