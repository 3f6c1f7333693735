// File: api.go — bulk construction entry points.
//
// FromLines and FromPolygons both follow the same three-step shape for
// bulk construction: link every edge with correct vertex-chain
// insertion, run the cycle finder once over the whole arrangement,
// then assign faces from its output. Neither performs intersection
// checking — that validation belongs to the incremental editors in
// edit.go.
package builder

import (
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/cyclefind"
	"github.com/gopherplane/dcel/geom"
)

// FromLines builds a subdivision containing one full edge per input
// segment. Segments with coincident endpoints are rejected with
// ErrDegenerateEdge before any mutation.
func FromLines(segments []geom.Segment, opts ...BuilderOption) (*core.Subdivision, error) {
	cfg := newBuilderConfig(opts...)
	s, err := core.NewSubdivision(cfg.subdivisionOpts...)
	if err != nil {
		return nil, err
	}
	for _, seg := range segments {
		if seg.Start.Equal(seg.End, s.Epsilon()) {
			return nil, ErrDegenerateEdge
		}
		a, _ := s.NewVertex(seg.Start)
		b, _ := s.NewVertex(seg.End)
		s.LinkEdge(a, b)
	}
	rebuildFaces(s)
	return s, nil
}

// FromPolygons builds a subdivision containing one full edge per
// consecutive vertex pair of each polygon (the last vertex connects
// back to the first). Polygons with fewer than three distinct
// consecutive vertices are rejected with ErrInvalidPolygon.
func FromPolygons(polygons [][]geom.Point, opts ...BuilderOption) (*core.Subdivision, error) {
	cfg := newBuilderConfig(opts...)
	s, err := core.NewSubdivision(cfg.subdivisionOpts...)
	if err != nil {
		return nil, err
	}
	for _, poly := range polygons {
		if len(poly) < 3 {
			return nil, ErrInvalidPolygon
		}
		for i := 0; i < len(poly); i++ {
			p, q := poly[i], poly[(i+1)%len(poly)]
			if p.Equal(q, s.Epsilon()) {
				return nil, ErrInvalidPolygon
			}
		}
		for i := 0; i < len(poly); i++ {
			p, q := poly[i], poly[(i+1)%len(poly)]
			a, _ := s.NewVertex(p)
			b, _ := s.NewVertex(q)
			s.LinkEdge(a, b)
		}
	}
	rebuildFaces(s)
	return s, nil
}

// rebuildFaces discards every face but the unbounded one, re-runs the
// cycle finder, and reassigns faces from its classified output. Every
// topology-mutating operation in this package ends by calling this
// rather than maintaining incremental face-split/merge bookkeeping,
// trading the incremental algorithm's better amortized cost for an
// implementation with a single, independently testable face-assignment
// path (a simplification in the same family as the vertex-chain-
// splicing one in package core).
func rebuildFaces(s *core.Subdivision) {
	for _, f := range s.Faces() {
		if !f.Unbounded() {
			s.DeleteFace(f)
		}
	}
	s.ClearInner(s.UnboundedFace())

	res := cyclefind.Find(s)

	faceOf := make(map[*cyclefind.Cycle]*core.Face, len(res.Outer))
	for _, c := range res.Outer {
		f := s.NewFace()
		rep := c.Edges[0]
		s.SetOuter(f, rep)
		s.SetFace(rep, f)
		faceOf[c] = f
	}

	for _, c := range res.Inner {
		container := containerFace(c, faceOf)
		if container == nil {
			container = s.UnboundedFace()
		}
		rep := c.Edges[0]
		s.SetFace(rep, container)
		s.AddInner(container, rep)
	}
}

// containerFace resolves an inner cycle's Next chain to the face it
// nests inside, or nil if the chain ends without reaching an outer
// cycle (the hole belongs to the unbounded face).
func containerFace(c *cyclefind.Cycle, faceOf map[*cyclefind.Cycle]*core.Face) *core.Face {
	cur := c.Next
	for cur != nil && cur.Orientation == cyclefind.Inner {
		cur = cur.Next
	}
	if cur == nil {
		return nil
	}
	return faceOf[cur]
}
