package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/builder"
	"github.com/gopherplane/dcel/geom"
	"github.com/gopherplane/dcel/overlay"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }
func seg(x1, y1, x2, y2 float64) geom.Segment {
	return geom.Segment{Start: pt(x1, y1), End: pt(x2, y2)}
}

func TestOverlay_CrossingSegments(t *testing.T) {
	s1, err := builder.FromLines([]geom.Segment{seg(0, 0, 4, 0)})
	require.NoError(t, err)
	s2, err := builder.FromLines([]geom.Segment{seg(2, -2, 2, 2)})
	require.NoError(t, err)

	s, pm, err := overlay.Overlay(s1, s2)
	require.NoError(t, err)

	assert.Equal(t, 5, s.VertexCount())
	assert.Equal(t, 8, s.EdgeCount())
	assert.Equal(t, 1, s.FaceCount())
	assert.NoError(t, s.Validate())
	assert.Equal(t, overlay.FacePair{S1: 0, S2: 0}, pm[0])
}

func TestOverlay_OverlappingSquares_ProvenancePairs(t *testing.T) {
	sq1 := [][]geom.Point{{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}}
	sq2 := [][]geom.Point{{pt(2, 2), pt(6, 2), pt(6, 6), pt(2, 6)}}

	s1, err := builder.FromPolygons(sq1, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	s2, err := builder.FromPolygons(sq2, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	s, pm, err := overlay.Overlay(s1, s2)
	require.NoError(t, err)

	assert.Equal(t, 10, s.VertexCount())
	assert.Equal(t, 24, s.EdgeCount())
	assert.Equal(t, 4, s.FaceCount())
	assert.NoError(t, s.Validate())

	assert.Equal(t, overlay.FacePair{S1: 0, S2: 0}, pm[0])

	var pairs []overlay.FacePair
	for key, pair := range pm {
		if key == 0 {
			continue
		}
		pairs = append(pairs, pair)
	}
	assert.ElementsMatch(t, []overlay.FacePair{
		{S1: 1, S2: 0},
		{S1: 1, S2: 1},
		{S1: 0, S2: 1},
	}, pairs)
}

func TestOverlay_EmptySecondOperand_PreservesFirst(t *testing.T) {
	s1, err := builder.FromLines([]geom.Segment{
		seg(0, 0, 4, 0),
		seg(4, 0, 2, 3),
		seg(2, 3, 0, 0),
	}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	s2, err := builder.FromLines(nil, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	s, pm, err := overlay.Overlay(s1, s2)
	require.NoError(t, err)

	assert.Equal(t, s1.VertexCount(), s.VertexCount())
	assert.Equal(t, s1.EdgeCount(), s.EdgeCount())
	assert.Equal(t, s1.FaceCount(), s.FaceCount())
	assert.Equal(t, overlay.FacePair{S1: 1, S2: 0}, pm[1])
}

func TestOverlay_CongruentEdgeInBothOperands_Fails(t *testing.T) {
	s1, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	s2, err := builder.FromLines([]geom.Segment{seg(1, 0, 0, 0)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	_, _, err = overlay.Overlay(s1, s2)
	assert.ErrorIs(t, err, overlay.ErrOverlayInvalidResult)
}

func TestOverlay_EpsilonOrderRequirement(t *testing.T) {
	s1, err := builder.FromLines([]geom.Segment{seg(0, 0, 1, 0)}, builder.WithEpsilon(1e-6))
	require.NoError(t, err)
	s2, err := builder.FromLines([]geom.Segment{seg(2, 2, 3, 3)}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)

	_, _, err = overlay.Overlay(s1, s2)
	assert.ErrorIs(t, err, overlay.ErrEpsilonOrder)
}
