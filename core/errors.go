// File: errors.go — sentinel errors for the core DCEL store.
//
// Error policy: only package-level sentinels are exported; call sites
// that need to attach context wrap them with fmt.Errorf("%w", ...) so
// callers can still branch with errors.Is.
package core

import "errors"

var (
	// ErrEmptyCollection names the case of an operation that needs at
	// least one vertex/edge/face. No function in this package returns
	// it; lookups on an empty subdivision report false instead.
	ErrEmptyCollection = errors.New("core: collection is empty")

	// ErrVertexNotFound indicates a query referenced a vertex that is
	// not present in the subdivision.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a query referenced a half-edge key that
	// is not present in the subdivision.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFaceNotFound indicates a query referenced a face key that is
	// not present in the subdivision.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrNegativeEpsilon is returned when constructing a subdivision
	// with a negative epsilon.
	ErrNegativeEpsilon = errors.New("core: epsilon must be non-negative")

	// ErrEpsilonLocked is returned when changing epsilon after vertices
	// already exist.
	ErrEpsilonLocked = errors.New("core: epsilon is fixed once vertices exist")

	// ErrDuplicateVertex names an insertion of a vertex that already
	// exists within epsilon of an existing one. No function in this
	// package returns it; NewVertex returns the existing vertex and false.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrInvariantClosure reports a broken twin/next/previous closure
	// invariant.
	ErrInvariantClosure = errors.New("core: half-edge closure invariant violated")

	// ErrInvariantCycle reports a boundary cycle that does not return to
	// its start, or that references more than one face.
	ErrInvariantCycle = errors.New("core: cycle consistency invariant violated")

	// ErrInvariantPlanarity reports two non-adjacent edges crossing at a
	// point that is not a shared endpoint.
	ErrInvariantPlanarity = errors.New("core: planarity invariant violated")

	// ErrInvariantVertexOrder reports a non-monotonic angular order of
	// outgoing half-edges around a vertex.
	ErrInvariantVertexOrder = errors.New("core: vertex ordering invariant violated")

	// ErrInvariantKeys reports an edge or face whose catalog key does
	// not match its own key.
	ErrInvariantKeys = errors.New("core: key uniqueness invariant violated")
)
