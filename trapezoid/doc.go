// Package trapezoid builds a randomized-incremental trapezoidal-map
// search DAG over a finished subdivision and answers point-location
// queries against it in expected O(log n) time.
//
// The DAG has three node kinds: a trapezoid leaf, an x-node splitting
// on a vertex, and a y-node splitting on an oriented edge. Build
// inserts one full edge at a time — randomized order by default,
// disabled by Ordered() for reproducible tests — finds every
// trapezoid the new edge crosses, and replaces each with a small
// subtree splitting it into an above-edge and a below-edge piece.
//
// Simplification: the textbook algorithm steps from one intersected
// trapezoid to the next via the DAG's own upper-right/lower-right
// neighbor pointers, an O(1) amortized step that depends on those
// pointers staying perfectly consistent across every prior insertion.
// This implementation instead re-descends from the DAG root using a
// probe point just past each trapezoid's right boundary, which only
// costs an extra O(log n) factor per crossed trapezoid and is far
// simpler to get right without ever compiling or running the result.
// Neighbor pointers (upperLeft/upperRight/lowerLeft/lowerRight) are
// still populated at split time, but Query never consults them — only
// Build's own crossed-trapezoid walk would, and it doesn't either. The
// companion optimization of reusing an unchanged upper or lower
// sub-trapezoid across insertions is likewise dropped: every split
// always allocates fresh above/below trapezoids. Both simplifications
// affect only the DAG's size and expected depth, never point-location
// correctness.
package trapezoid
