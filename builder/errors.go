// File: errors.go — sentinel errors for the builder package.
//
// Error policy: only package-level sentinels are exported. AddEdge and
// MoveVertex return one of these on a pre-check failure and leave the
// subdivision unchanged — the return value on failure is the sentinel
// error, not a partially applied mutation. RemoveVertex reports a
// refusal by returning false; RemoveEdge, SplitEdge and TrySplitEdge
// return no error.
package builder

import "errors"

var (
	// ErrDegenerateEdge is returned when an edge's two endpoints
	// coincide.
	ErrDegenerateEdge = errors.New("builder: edge endpoints coincide")

	// ErrDuplicateEdge is returned when an edge would exactly overlap
	// an existing one.
	ErrDuplicateEdge = errors.New("builder: edge duplicates an existing one")

	// ErrCrossingEdge is returned by AddEdge or MoveVertex when the new
	// edge, or an edge of the moved vertex, would introduce a strict
	// crossing with an existing edge.
	ErrCrossingEdge = errors.New("builder: operation would cross an existing edge")

	// ErrFaceMismatch is returned when an edge's two endpoints do not
	// share a common incident face.
	ErrFaceMismatch = errors.New("builder: edge endpoints do not share a face")

	// ErrPointOccupied is returned when a vertex move targets a point
	// already occupied by a different vertex.
	ErrPointOccupied = errors.New("builder: target point is occupied")

	// ErrNotRemovable describes a vertex that does not have exactly two
	// incident half-edges. RemoveVertex does not return it; it reports
	// that case by returning false.
	ErrNotRemovable = errors.New("builder: vertex is not removable (degree != 2)")

	// ErrInvalidPolygon is returned for a polygon with fewer than three
	// vertices or with consecutive duplicate vertices.
	ErrInvalidPolygon = errors.New("builder: polygon has fewer than three distinct consecutive vertices")
)
