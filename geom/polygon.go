package geom

import "math"

// PolygonLocation classifies a query point against a polygon boundary.
type PolygonLocation int

const (
	// Outside the polygon.
	Outside PolygonLocation = iota
	// Inside the polygon.
	Inside
	// OnEdge is within eps of a polygon side, but not a vertex.
	OnEdge
	// OnVertex is within eps of a polygon vertex.
	OnVertex
)

func (l PolygonLocation) String() string {
	switch l {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case OnEdge:
		return "Edge"
	case OnVertex:
		return "Vertex"
	default:
		return "PolygonLocation(?)"
	}
}

// PointInPolygon classifies pt against the closed polygon poly (given as
// an ordered ring, not repeating the first point at the end) using the
// ray-crossings algorithm. eps is applied to vertex and edge coincidence
// checks before falling back to the crossing count.
func PointInPolygon(poly []Point, pt Point, eps float64) PolygonLocation {
	n := len(poly)
	if n < 3 {
		return Outside
	}

	for _, v := range poly {
		if pt.Equal(v, eps) {
			return OnVertex
		}
	}
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if onSegment(a, b, pt, eps) {
			return OnEdge
		}
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if rayCrosses(a, b, pt) {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// onSegment reports whether pt lies within eps of the closed segment a-b.
func onSegment(a, b, pt Point, eps float64) bool {
	seg := Segment{Start: a, End: b}
	length := a.Dist(b)
	if length == 0 {
		return pt.Equal(a, eps)
	}
	dir := seg.Vec().Scale(1 / length)
	t := pt.Sub(a).Dot(dir)
	if t < -eps || t > length+eps {
		return false
	}
	proj := a.Add(dir.Scale(t))
	return pt.Dist(proj) <= eps
}

// rayCrosses reports whether a rightward horizontal ray from pt crosses
// edge a-b, using the standard half-open convention so that a ray
// passing exactly through a vertex is counted exactly once across the
// two edges that share it.
func rayCrosses(a, b, pt Point) bool {
	if (a.Y > pt.Y) == (b.Y > pt.Y) {
		return false
	}
	xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return pt.X < xCross
}

// Area returns the signed area of the polygon (positive for
// counter-clockwise orientation in math coordinates).
func Area(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// AbsArea returns the unsigned area of the polygon.
func AbsArea(poly []Point) float64 { return math.Abs(Area(poly)) }
