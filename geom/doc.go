// Package geom provides the pure geometric primitives the rest of the
// module builds on: a 2D point type, lexicographic comparators with
// configurable epsilon, segment-intersection classification, polygon
// point location, and convex hull.
//
// Every function here is a pure value computation — no shared state, no
// allocation beyond its return value, and no dependency on the DCEL
// store in package core. That separation lets core, cyclefind, builder,
// overlay and trapezoid all depend on geom without geom depending on any
// of them.
//
// Epsilon. Functions that accept an eps float64 treat two coordinates as
// equal when their absolute difference is <= eps. Nothing in this
// package checks the sign of eps; callers validate user-supplied
// epsilon before it reaches this package (core.NewSubdivision rejects a
// negative one with ErrNegativeEpsilon).
package geom
