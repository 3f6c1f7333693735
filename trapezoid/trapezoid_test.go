package trapezoid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/builder"
	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/geom"
	"github.com/gopherplane/dcel/locate"
	"github.com/gopherplane/dcel/trapezoid"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func sameFullEdge(a, b *core.HalfEdge) bool {
	return a == b || a == b.Twin()
}

func nestedSquares(t *testing.T) *core.Subdivision {
	outer := []geom.Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	inner := []geom.Point{pt(3, 3), pt(7, 3), pt(7, 7), pt(3, 7)}
	s, err := builder.FromPolygons([][]geom.Point{outer, inner}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	return s
}

func TestMap_AgreesWithBruteForceLocator(t *testing.T) {
	s := nestedSquares(t)
	tm := trapezoid.Build(s, trapezoid.Ordered())

	samples := []geom.Point{
		pt(5, 5),    // inside the inner square's own face
		pt(1, 1),    // in the ring between outer and inner squares
		pt(9, 9),    // also in the ring, opposite corner
		pt(20, 20),  // outside everything
		pt(-5, -5),  // outside everything, other direction
		pt(0, 0),    // outer corner vertex
		pt(3, 3),    // inner corner vertex
		pt(2, 0),    // on the outer square's bottom edge
		pt(3, 5),    // on the inner square's left edge
		pt(0, 5),    // on the outer square's left edge
	}

	for _, p := range samples {
		brute := locate.Locate(s, p)
		indexed := tm.Query(p)

		require.Equalf(t, brute.Kind, indexed.Kind, "point %v", p)
		switch brute.Kind {
		case locate.AtFace:
			assert.Equalf(t, brute.Face.Key(), indexed.Face.Key(), "point %v", p)
		case locate.AtVertex:
			assert.Truef(t, brute.Vertex.Point.Equal(indexed.Vertex.Point, s.Epsilon()), "point %v", p)
		case locate.AtEdge:
			assert.Truef(t, sameFullEdge(brute.Edge, indexed.Edge), "point %v", p)
		}
	}
}

func TestMap_QueryMatchesOnSingleSegment(t *testing.T) {
	s, err := builder.FromLines([]geom.Segment{{Start: pt(0, 0), End: pt(4, 0)}}, builder.WithEpsilon(1e-9))
	require.NoError(t, err)
	tm := trapezoid.Build(s, trapezoid.Ordered())

	mid := tm.Query(pt(2, 0))
	assert.Equal(t, locate.AtEdge, mid.Kind)

	above := tm.Query(pt(2, 1))
	assert.Equal(t, locate.AtFace, above.Kind)
	assert.True(t, above.Face.Unbounded())

	endpoint := tm.Query(pt(0, 0))
	assert.Equal(t, locate.AtVertex, endpoint.Kind)
}

func TestMap_RandomizedOrderStillAgrees(t *testing.T) {
	s := nestedSquares(t)
	tm := trapezoid.Build(s, trapezoid.WithSeed(7))

	for _, p := range []geom.Point{pt(5, 5), pt(1, 1), pt(9, 9), pt(20, 20)} {
		brute := locate.Locate(s, p)
		indexed := tm.Query(p)
		assert.Equalf(t, brute.Kind, indexed.Kind, "point %v", p)
	}
}
