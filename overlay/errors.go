// File: errors.go — sentinel errors for the overlay package.
package overlay

import "errors"

var (
	// ErrEpsilonOrder is returned when epsilon(S2) < epsilon(S1): the
	// second operand's tolerance must be at least as loose as the
	// first's.
	ErrEpsilonOrder = errors.New("overlay: epsilon(s2) must be >= epsilon(s1)")

	// ErrOverlayInvalidResult reports that the two operands contain a
	// pair of exactly congruent collinear edges, one from each operand.
	// This is preserved as a fatal internal error rather than a silent
	// dedup: the result would need two full edges between the same
	// vertex pair, so overlay refuses to build S at all.
	ErrOverlayInvalidResult = errors.New("overlay: congruent edge present in both operands")
)
