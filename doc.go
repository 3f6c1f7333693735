// Package dcel is an in-memory planar subdivision engine: a
// doubly-connected edge list store, a plane-sweep cycle finder that
// derives face structure from a raw edge set, a builder for bulk and
// incremental construction, an overlay engine for intersecting two
// subdivisions, and both a brute-force and a randomized trapezoidal-map
// point locator.
//
// Everything is organized under seven subpackages:
//
//	geom/      — points, segments, and the predicates (orientation,
//	             intersection, point-in-polygon) everything else builds on
//	core/      — the Subdivision/Vertex/HalfEdge/Face store itself
//	cyclefind/ — plane-sweep discovery of a raw edge set's face cycles
//	builder/   — FromLines/FromPolygons construction plus AddEdge,
//	             RemoveEdge, SplitEdge, MoveVertex, RemoveVertex edits
//	overlay/   — geometric intersection of two subdivisions, with
//	             per-face provenance back to both operands
//	trapezoid/ — a randomized incremental trapezoidal map for O(log n)
//	             point location, alongside locate/'s brute-force locator
//	locate/    — brute-force point location against a subdivision's
//	             faces, edges and vertices
package dcel
