package geom

import "math"

// Relation classifies how the infinite lines through two segments relate.
type Relation int

const (
	// Divergent lines cross at exactly one point.
	Divergent Relation = iota
	// Parallel lines never meet (and are not collinear).
	Parallel
	// Collinear segments lie on the same infinite line.
	Collinear
)

func (r Relation) String() string {
	switch r {
	case Divergent:
		return "Divergent"
	case Parallel:
		return "Parallel"
	case Collinear:
		return "Collinear"
	default:
		return "Relation(?)"
	}
}

// Location describes where a point of interest falls relative to a
// segment (or, for Parallel/Collinear relations, relative to the other
// segment's supporting line).
type Location int

const (
	// Before precedes the segment's start.
	Before Location = iota
	// Start coincides with the segment's start endpoint.
	Start
	// Between lies strictly inside the segment.
	Between
	// End coincides with the segment's end endpoint.
	End
	// After follows the segment's end.
	After
	// Left lies to the left of the other segment's line.
	Left
	// Right lies to the right of the other segment's line.
	Right
)

func (l Location) String() string {
	switch l {
	case Before:
		return "Before"
	case Start:
		return "Start"
	case Between:
		return "Between"
	case End:
		return "End"
	case After:
		return "After"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Location(?)"
	}
}

// Segment is an oriented pair of endpoints.
type Segment struct {
	Start Point
	End   Point
}

// Vec returns the segment's direction vector (End - Start).
func (s Segment) Vec() Point { return s.End.Sub(s.Start) }

// Intersection is the classified result of intersecting two segments.
type Intersection struct {
	// Exists reports whether the infinite lines intersect, or whether
	// collinear segments overlap at all.
	Exists bool
	// Relation classifies the two segments' supporting lines.
	Relation Relation
	// Shared holds the intersection coordinates when Relation is
	// Divergent (or the shared endpoint for a touching Collinear pair).
	// Nil when there is no single shared point.
	Shared *Point
	// First locates the interesting point on segment a.
	First Location
	// Second locates the interesting point on segment b.
	Second Location
}

// classify turns a parameter t (the fraction along a segment, 0 at
// Start, 1 at End) into a Location, snapping to Start/End within eps of
// the unit parametrization. segLen is the segment's length, used to
// convert the eps (a distance) into a parameter tolerance.
func classify(t, segLen, eps float64) Location {
	tol := 0.0
	if segLen > 0 {
		tol = eps / segLen
	}
	switch {
	case t < -tol:
		return Before
	case t <= tol:
		return Start
	case t < 1-tol:
		return Between
	case t <= 1+tol:
		return End
	default:
		return After
	}
}

// IntersectSegments classifies the relationship between segments a and
// b under tolerance eps (see package doc for epsilon semantics).
func IntersectSegments(a, b Segment, eps float64) Intersection {
	d1 := a.Vec()
	d2 := b.Vec()
	denom := d1.X*d2.Y - d1.Y*d2.X
	lenA := a.Start.Dist(a.End)
	lenB := b.Start.Dist(b.End)

	if sign(denom, eps*math.Max(lenA, lenB)+eps) == 0 {
		// Parallel or collinear: the cross product of the vector
		// between the two start points and either direction tells us
		// whether they share a line.
		w := b.Start.Sub(a.Start)
		cross := d1.X*w.Y - d1.Y*w.X
		if sign(cross, eps*math.Max(lenA, 1)) != 0 {
			return classifyParallel(a, b, eps)
		}
		return classifyCollinear(a, b, eps)
	}

	w := b.Start.Sub(a.Start)
	t := (w.X*d2.Y - w.Y*d2.X) / denom
	u := (w.X*d1.Y - w.Y*d1.X) / denom

	shared := a.Start.Add(d1.Scale(t))
	shared = snapToEndpoint(shared, a, b, eps)

	return Intersection{
		Exists:   true,
		Relation: Divergent,
		Shared:   &shared,
		First:    classify(t, lenA, eps),
		Second:   classify(u, lenB, eps),
	}
}

// snapToEndpoint replaces p with whichever of the four segment
// endpoints it lies within eps of, to avoid floating-point drift
// accumulating across repeated splits.
func snapToEndpoint(p Point, a, b Segment, eps float64) Point {
	for _, cand := range [...]Point{a.Start, a.End, b.Start, b.End} {
		if p.Equal(cand, eps) {
			return cand
		}
	}
	return p
}

// classifyParallel handles two non-collinear parallel segments. First
// reports which side of b's line a's start point falls on; Second
// reports which side of a's line b's start point falls on.
func classifyParallel(a, b Segment, eps float64) Intersection {
	sideOfA := sign(Cross(a.Start, a.End, b.Start), eps)
	sideOfB := sign(Cross(b.Start, b.End, a.Start), eps)
	return Intersection{
		Exists:   false,
		Relation: Parallel,
		First:    sideLocation(sideOfB),
		Second:   sideLocation(sideOfA),
	}
}

func sideLocation(s int) Location {
	if s > 0 {
		return Left
	}
	return Right
}

// classifyCollinear handles two segments on the same infinite line. It
// projects every endpoint onto the line's direction using a as the
// reference and reports whether, and how, they overlap.
func classifyCollinear(a, b Segment, eps float64) Intersection {
	lenA := a.Start.Dist(a.End)
	dir := a.Vec()
	if lenA > 0 {
		dir = dir.Scale(1 / lenA)
	}

	param := func(p Point) float64 { return p.Sub(a.Start).Dot(dir) }

	bs, be := param(b.Start), param(b.End)
	first := classify(safeDiv(bs, lenA), lenA, eps)
	second := classify(safeDiv(be, lenA), lenA, eps)

	overlaps := !(bs < -eps && be < -eps) && !(bs > lenA+eps && be > lenA+eps)

	var shared *Point
	if overlaps {
		// Report the endpoint of b closest to a's extent as the
		// representative shared point (used when segments merely touch).
		if math.Abs(bs) <= eps {
			p := b.Start
			shared = &p
		} else if math.Abs(be) <= eps {
			p := b.End
			shared = &p
		} else if math.Abs(bs-lenA) <= eps {
			p := b.Start
			shared = &p
		} else if math.Abs(be-lenA) <= eps {
			p := b.End
			shared = &p
		}
	}

	return Intersection{
		Exists:   overlaps,
		Relation: Collinear,
		Shared:   shared,
		First:    first,
		Second:   second,
	}
}

func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
