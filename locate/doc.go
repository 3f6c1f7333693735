// Package locate defines the point-location result type shared by the
// brute-force locator (this package) and the trapezoidal map
// (package trapezoid), and implements the brute-force locator itself:
// it finds the containing face, then tests every half-edge on that
// face's boundary (outer and inner alike) for vertex or edge
// coincidence before falling back to the face itself.
package locate
