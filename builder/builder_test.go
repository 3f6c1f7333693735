package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/builder"
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }
func seg(x1, y1, x2, y2 float64) geom.Segment {
	return geom.Segment{Start: pt(x1, y1), End: pt(x2, y2)}
}

func TestFromLines_Triangle(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{
		seg(0, 0, 4, 0),
		seg(4, 0, 2, 3),
		seg(2, 3, 0, 0),
	}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, 6, s.EdgeCount())
	assert.Equal(t, 2, s.FaceCount())
	assert.NoError(t, s.Validate())
}

func TestFromLines_DegenerateSegmentRejected(t *testing.T) {
	_, err := builder.FromLines([]geom.Segment{seg(1, 1, 1, 1)})
	assert.ErrorIs(t, err, builder.ErrDegenerateEdge)
}

func TestFromLines_SquareWithDiagonal(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{
		seg(0, 0, 1, 0),
		seg(1, 0, 1, 1),
		seg(1, 1, 0, 1),
		seg(0, 1, 0, 0),
		seg(0, 0, 1, 1),
	}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	assert.Equal(t, 4, s.VertexCount())
	assert.Equal(t, 10, s.EdgeCount())
	assert.Equal(t, 3, s.FaceCount())
	assert.NoError(t, s.Validate())
}

func TestFromPolygons_NestedSquares(t *testing.T) {
	outer := []geom.Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	inner := []geom.Point{pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7)}
	s, err := builder.FromPolygons([][]geom.Point{outer, inner}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	assert.Equal(t, 3, s.FaceCount())
	assert.NoError(t, s.Validate())

	var outerFace *core.Face
	for _, f := range s.Faces() {
		if !f.Unbounded() && len(f.Inner()) == 1 {
			outerFace = f
		}
	}
	require.NotNil(t, outerFace, "expected one bounded face with exactly one hole")
}

func TestToLines_RoundTripsNonCrossingInput(t *testing.T) {
	lines := []geom.Segment{
		seg(0, 0, 4, 0),
		seg(4, 0, 2, 3),
		seg(2, 3, 0, 0),
	}
	s, err := builder.FromLines(lines, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	out := builder.ToLines(s)
	assert.Len(t, out, len(lines))
}

func TestAddEdge_ThenRemoveEdge_RestoresStructure(t *testing.T) {
	s, err := builder.FromPolygons([][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	before := s.Clone()

	a, _ := s.FindVertex(pt(0, 0))
	b, _ := s.FindVertex(pt(4, 4))
	h, err := builder.AddEdge(s, a.Point, b.Point)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, 4, s.VertexCount())
	assert.NotEqual(t, before.EdgeCount(), s.EdgeCount())

	builder.RemoveEdge(s, h)
	assert.True(t, before.StructureEquals(s))
}

func TestAddEdge_CoincidentEndpointsRejected(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	_, err = builder.AddEdge(s, pt(0, 0), pt(0, 0))
	assert.ErrorIs(t, err, builder.ErrDegenerateEdge)
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	_, err = builder.AddEdge(s, pt(0, 0), pt(1, 0))
	assert.ErrorIs(t, err, builder.ErrDuplicateEdge)
}

func TestAddEdge_CrossingRejected(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{
		seg(0, 0, 4, 0),
		seg(2, -2, 2, 2),
	}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	_, err = builder.AddEdge(s, pt(0, -2), pt(4, 2))
	assert.ErrorIs(t, err, builder.ErrCrossingEdge)
}

func TestSplitEdge_ThenRemoveVertex_RestoresStructure(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 4, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	before := s.Clone()

	h, _ := s.Edge(0)
	require.NotNil(t, h)
	mid := pt(2, 0)
	builder.SplitEdge(s, h, mid)
	assert.Equal(t, 3, s.VertexCount())

	v, ok := s.FindVertex(mid)
	require.True(t, ok)
	_, removed := builder.RemoveVertex(s, v)
	require.True(t, removed)
	assert.True(t, before.StructureEquals(s))
}

func TestRemoveVertex_RefusesWrongDegree(t *testing.T) {
	// (0,0) has degree 3: two square sides plus the diagonal.
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 4, 0), seg(4, 0, 4, 4), seg(4, 4, 0, 4), seg(0, 4, 0, 0), seg(0, 0, 4, 4)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	v, _ := s.FindVertex(pt(0, 0))
	_, removed := builder.RemoveVertex(s, v)
	assert.False(t, removed)
}

func TestMoveVertex_RejectsCollision(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0), seg(2, 2, 3, 3)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	v, _ := s.FindVertex(pt(0, 0))
	_, err = builder.MoveVertex(s, v, pt(2, 2))
	assert.ErrorIs(t, err, builder.ErrPointOccupied)
}

func TestMoveVertex_Succeeds(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	v, _ := s.FindVertex(pt(0, 0))
	moved, err := builder.MoveVertex(s, v, pt(-1, -1))
	require.NoError(t, err)
	assert.True(t, moved.Point.Equal(pt(-1, -1), 1e-9))
	assert.NoError(t, s.Validate())
}
