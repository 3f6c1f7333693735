// Package cyclefind partitions a subdivision's half-edges into
// boundary cycles and classifies each as an outer cycle (it will
// become a bounded face) or an inner cycle (it will become a hole).
//
// # Algorithm
//
// Two stages, run by Find:
//
//  1. Cycle traversal: every half-edge is visited exactly once by
//     following Next() until the start is reached again. Each cycle
//     records its pivot — the lexicographically smallest vertex on the
//     cycle — and is classified Inner or Outer by the sign of the turn
//     at the pivot (or Inner unconditionally if every half-edge's twin
//     also lies on the cycle, meaning the cycle encloses no area).
//  2. Containment sweep: a vertical sweep over all vertices in
//     lexicographic order, maintaining the half-edges currently
//     crossing the sweep line in an unsorted list. At each inner
//     cycle's pivot, the nearest live half-edge to the left (found by
//     scanning the whole list) identifies the cycle the hole nests
//     inside.
//
// Complexity: O(E) for the traversal stage; O(V*k) for the containment
// sweep, where k is the number of half-edges live at any one time (each
// query scans the unsorted live list rather than a balanced
// order-statistics tree — see Find's doc comment).
package cyclefind
