// Package builder constructs and incrementally edits a subdivision.
//
// Two entry points build from scratch:
//
//   - FromLines: one full edge per input segment.
//   - FromPolygons: one full edge per consecutive vertex pair of each
//     input polygon (closed, cyclic).
//
// Both link every edge first (with vertex-chain insertion handled by
// core.Subdivision.LinkEdge), then run cyclefind.Find once and assign
// faces from its output — no intersection checking is performed in
// bulk mode; callers are expected to supply a non-crossing arrangement,
// exactly as a plane-sweep construction from raw geometry would.
//
// The incremental editors are AddEdge, RemoveEdge, SplitEdge,
// TrySplitEdge, MoveVertex and RemoveVertex. AddEdge and MoveVertex
// pre-check the change against the existing arrangement and reject it
// (with a sentinel error, no partial mutation) if it would introduce a
// crossing or a collision; RemoveVertex refuses a vertex of the wrong
// degree or a crossing join by returning false with s unchanged.
// RemoveEdge, SplitEdge and TrySplitEdge apply the change without a
// planarity check.
//
// Two serializers invert construction: ToLines and ToPolygons recover
// a segment or polygon-boundary form, useful for round-trip testing
// and for handing a subdivision's data back to client code that speaks
// plain geometry rather than DCEL.
package builder
