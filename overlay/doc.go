// Package overlay computes the geometric intersection of two
// subdivisions: a merged subdivision S whose edges are S1's and S2's
// edges split at every mutual crossing, together with a provenance map
// recording which original S1/S2 face each face of S was carved from.
//
// The algorithm works in two phases rather than a fully incremental
// edge-by-edge insertion: first every full edge of both operands is
// gathered as a plain segment and broken at every pairwise crossing
// (collinear overlap or divergent proper crossing) in splitArrangement,
// producing a flat set of non-crossing segments; then that set is
// handed to package builder exactly as builder.FromLines would consume
// any other segment list, so vertex-chain splicing, cycle finding, and
// face assignment are the same machinery builder already exercises
// rather than a parallel implementation. Provenance is resolved after
// the fact by locating a representative interior point of each new
// face in both S1 and S2 via core.Subdivision.FindFace, rather than by
// threading an edge-key incidence map through the splitting step. This
// trades single-pass incidence bookkeeping for two independently
// testable stages.
package overlay
