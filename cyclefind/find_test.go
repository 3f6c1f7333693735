package cyclefind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplane/dcel/core"
	"github.com/gopherplane/dcel/cyclefind"
	"github.com/gopherplane/dcel/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

// rawTriangle links a triangle's half-edges into both boundary cycles
// (CCW inner-face cycle and CW unbounded-face cycle) without assigning
// faces, so cyclefind.Find has something to classify.
func rawTriangle(t *testing.T) *core.Subdivision {
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

	return s
}

func TestFind_SingleTriangle_OneOuterOneInner(t *testing.T) {
	s := rawTriangle(t)
	res := cyclefind.Find(s)

	require.Len(t, res.Outer, 1)
	require.Len(t, res.Inner, 1)
	assert.Len(t, res.Outer[0].Edges, 3)
	assert.Len(t, res.Inner[0].Edges, 3)
	assert.Nil(t, res.Inner[0].Next)
}

func TestFind_PivotIsLexicographicallySmallest(t *testing.T) {
	s := rawTriangle(t)
	res := cyclefind.Find(s)

	for _, c := range append(append([]*cyclefind.Cycle{}, res.Outer...), res.Inner...) {
		for _, e := range c.Edges {
			assert.True(t, geom.CompareY(c.Pivot.Point, e.Origin().Point, 1e-9) <= 0)
		}
	}
}
