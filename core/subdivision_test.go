package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

// triangle builds a single triangular face via three LinkEdge calls and
// returns the subdivision plus its three vertices.
func triangleSubdivision(t *testing.T) (*core.Subdivision, []*core.Vertex) {
	t.Helper()
	s, err := core.NewSubdivision(core.WithEpsilon(1e-9))
	require.NoError(t, err)

	a, _ := s.NewVertex(pt(0, 0))
	b, _ := s.NewVertex(pt(4, 0))
	c, _ := s.NewVertex(pt(2, 3))

	ab, ba := s.LinkEdge(a, b)
	bc, cb := s.LinkEdge(b, c)
	ca, ac := s.LinkEdge(c, a)

	s.SpliceNextPrev(ab, bc)
	s.SpliceNextPrev(bc, ca)
	s.SpliceNextPrev(ca, ab)

	s.SpliceNextPrev(ac, cb)
	s.SpliceNextPrev(cb, ba)
	s.SpliceNextPrev(ba, ac)

	inner := s.NewFace()
	s.SetOuter(inner, ab)
	s.SetFace(ab, inner)

	return s, []*core.Vertex{a, b, c}
}

func TestNewSubdivision_StartsWithUnboundedFaceOnly(t *testing.T) {
	s, err := core.NewSubdivision()
	require.NoError(t, err)
	assert.Equal(t, 0, s.VertexCount())
	assert.Equal(t, 0, s.EdgeCount())
	assert.Equal(t, 1, s.FaceCount())
	assert.True(t, s.UnboundedFace().Unbounded())
}

func TestNewSubdivision_NegativeEpsilonRejected(t *testing.T) {
	_, err := core.NewSubdivision(core.WithEpsilon(-1))
	assert.ErrorIs(t, err, core.ErrNegativeEpsilon)
}

func TestSetEpsilon_LockedOnceVerticesExist(t *testing.T) {
	s, err := core.NewSubdivision()
	require.NoError(t, err)
	s.NewVertex(pt(0, 0))
	assert.ErrorIs(t, s.SetEpsilon(0.1), core.ErrEpsilonLocked)
}

func TestNewVertex_DeduplicatesWithinEpsilon(t *testing.T) {
	s, err := core.NewSubdivision(core.WithEpsilon(1e-6))
	require.NoError(t, err)
	v1, created1 := s.NewVertex(pt(1, 1))
	v2, created2 := s.NewVertex(pt(1, 1))
	assert.True(t, created1)
	assert.False(t, created2)
	assert.Same(t, v1, v2)
	assert.Equal(t, 1, s.VertexCount())
}

func TestTriangle_Invariants(t *testing.T) {
	s, verts := triangleSubdivision(t)
	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, 6, s.EdgeCount())
	assert.Equal(t, 2, s.FaceCount())
	assert.NoError(t, s.Validate())

	for _, v := range verts {
		assert.NotNil(t, v.Edge())
	}
}

func TestFindEdge_RoundTrip(t *testing.T) {
	s, verts := triangleSubdivision(t)
	a, b := verts[0], verts[1]
	h, ok := s.FindEdge(a, b)
	require.True(t, ok)
	assert.Equal(t, a, h.Origin())
	assert.Equal(t, b, h.Destination())
	assert.Equal(t, h, h.Twin().Twin())
}

func TestBoundaryPolygon_MatchesOriginalVertices(t *testing.T) {
	s, verts := triangleSubdivision(t)
	var face *core.Face
	for _, f := range s.Faces() {
		if !f.Unbounded() {
			face = f
		}
	}
	require.NotNil(t, face)
	poly := s.BoundaryPolygon(face)
	assert.Len(t, poly, 3)
	for _, v := range verts {
		found := false
		for _, p := range poly {
			if p.Equal(v.Point, 1e-9) {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestRenumberEdges_PreservesTwinPairing(t *testing.T) {
	s, _ := triangleSubdivision(t)
	s.RenumberEdges()
	for _, h := range s.Edges() {
		if h.Key()%2 == 0 {
			assert.Equal(t, h.Key()+1, h.Twin().Key())
		} else {
			assert.Equal(t, h.Key()-1, h.Twin().Key())
		}
	}
}

func TestRenumberFaces_KeepsUnboundedAtZero(t *testing.T) {
	s, _ := triangleSubdivision(t)
	s.RenumberFaces()
	assert.Equal(t, 0, s.UnboundedFace().Key())
}

func TestClone_IsIndependentCopy(t *testing.T) {
	s, _ := triangleSubdivision(t)
	clone := s.Clone()
	assert.True(t, s.StructureEquals(clone))

	clone.NewVertex(pt(10, 10))
	assert.NotEqual(t, s.VertexCount(), clone.VertexCount())
}

func TestUnlinkEdge_RemovesIsolatedVertex(t *testing.T) {
	s, err := core.NewSubdivision()
	require.NoError(t, err)
	a, _ := s.NewVertex(pt(0, 0))
	b, _ := s.NewVertex(pt(1, 0))
	e, _ := s.LinkEdge(a, b)
	assert.Equal(t, 2, s.VertexCount())

	s.UnlinkEdge(e)
	assert.Equal(t, 0, s.VertexCount())
	assert.Equal(t, 0, s.EdgeCount())
}

func TestFindNearestVertex(t *testing.T) {
	s, verts := triangleSubdivision(t)
	nearest, ok := s.FindNearestVertex(pt(0.1, 0.1))
	require.True(t, ok)
	assert.Same(t, verts[0], nearest)
}

// danglingEdge links a and b as a full edge with no face assignment.
// LinkEdge's own rotation splicing gives a closure that satisfies
// Validate's properties 1 and 2: at a fresh endpoint the two half-edges
// become each other's next/previous, and at an endpoint shared with an
// earlier edge they join that edge's chain.
func danglingEdge(s *core.Subdivision, a, b *core.Vertex) {
	s.LinkEdge(a, b)
}

func TestValidate_CrossingEdgesViolatePlanarity(t *testing.T) {
	s, err := core.NewSubdivision(core.WithEpsilon(1e-9))
	require.NoError(t, err)

	a, _ := s.NewVertex(pt(0, 0))
	b, _ := s.NewVertex(pt(4, 4))
	c, _ := s.NewVertex(pt(0, 4))
	d, _ := s.NewVertex(pt(4, 0))

	danglingEdge(s, a, b)
	danglingEdge(s, c, d)

	err = s.Validate()
	assert.ErrorIs(t, err, core.ErrInvariantPlanarity)
}

func TestValidate_TouchingAtSharedVertexIsFine(t *testing.T) {
	s, err := core.NewSubdivision(core.WithEpsilon(1e-9))
	require.NoError(t, err)

	a, _ := s.NewVertex(pt(0, 0))
	b, _ := s.NewVertex(pt(4, 0))
	c, _ := s.NewVertex(pt(2, 3))

	danglingEdge(s, a, b)
	danglingEdge(s, a, c)

	assert.NoError(t, s.Validate())
}
