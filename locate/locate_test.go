package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/builder"
	"github.com/gopherplane/dcel/geom"
	"github.com/gopherplane/dcel/locate"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func TestLocate_InteriorPoint(t *testing.T) {
	s, err := builder.FromPolygons([][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	loc := locate.Locate(s, pt(2, 2))
	assert.Equal(t, locate.AtFace, loc.Kind)
	assert.False(t, loc.Face.Unbounded())
}

func TestLocate_OnVertex(t *testing.T) {
	s, err := builder.FromPolygons([][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	loc := locate.Locate(s, pt(0, 0))
	assert.Equal(t, locate.AtVertex, loc.Kind)
	assert.True(t, loc.Vertex.Point.Equal(pt(0, 0), 1e-9))
}

func TestLocate_OnEdge(t *testing.T) {
	s, err := builder.FromPolygons([][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	loc := locate.Locate(s, pt(2, 0))
	assert.Equal(t, locate.AtEdge, loc.Kind)
	assert.NotNil(t, loc.Edge)
}

func TestLocate_OutsideAnyFace(t *testing.T) {
	s, err := builder.FromPolygons([][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	loc := locate.Locate(s, pt(100, 100))
	assert.Equal(t, locate.AtFace, loc.Kind)
	assert.True(t, loc.Face.Unbounded())
}

// A dangling (open) segment never closes into a cycle, so its half-edge
// pair becomes an inner (hole) boundary of the unbounded face rather
// than a bounded face of its own. Locate must still test that boundary
// for vertex/edge coincidence instead of short-circuiting on
// f.Unbounded().
func TestLocate_OnDanglingSegment_UnboundedFaceHasHoleBoundary(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{{Start: pt(0, 0), End: pt(4, 0)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	mid := locate.Locate(s, pt(2, 0))
	require.Equal(t, locate.AtEdge, mid.Kind)
	assert.NotNil(t, mid.Edge)

	endpoint := locate.Locate(s, pt(0, 0))
	require.Equal(t, locate.AtVertex, endpoint.Kind)
	assert.True(t, endpoint.Vertex.Point.Equal(pt(0, 0), 1e-9))

	away := locate.Locate(s, pt(2, 5))
	assert.Equal(t, locate.AtFace, away.Kind)
	assert.True(t, away.Face.Unbounded())
}
