package cyclefind

import "github.com/gopherplane/dcel/core"

// Orientation classifies a boundary cycle.
type Orientation int

const (
	// Inner cycles bound a hole; they become one of a face's Inner
	// boundaries.
	Inner Orientation = iota
	// Outer cycles bound a face from outside; they become a face's
	// Outer boundary.
	Outer
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Outer {
		return "outer"
	}
	return "inner"
}

// Cycle is one boundary cycle discovered by Find.
type Cycle struct {
	// Edges holds every half-edge on the cycle, in Next() order
	// starting from an arbitrary representative.
	Edges []*core.HalfEdge

	// Pivot is the lexicographically smallest vertex on the cycle.
	Pivot *core.Vertex

	// Orientation classifies the cycle as Inner or Outer.
	Orientation Orientation

	// Next chains an inner cycle to its container: the cycle of the
	// nearest live half-edge to the left of its pivot. That cycle may be
	// outer or inner (such as the inner cycle of another component
	// lying in the unbounded face). Outer cycles, and inner cycles with
	// no half-edge to their left, leave Next nil.
	Next *Cycle
}

// Result is the output of Find: the two classified cycle lists.
type Result struct {
	// Outer holds every cycle that will become a bounded face's outer
	// boundary.
	Outer []*Cycle

	// Inner holds every cycle that will become a hole. Next is non-nil
	// when Find found a half-edge to the left of the cycle's pivot (see
	// Cycle.Next) and nil otherwise.
	Inner []*Cycle
}
