package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherplane/dcel/geom"
)

func TestConvexHull_SinglePoint(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}}
	got := geom.ConvexHull(pts, 1e-9)
	assert.Equal(t, pts, got)
}

func TestConvexHull_TwoDistinctPoints(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	got := geom.ConvexHull(pts, 1e-9)
	assert.Len(t, got, 2)
}

func TestConvexHull_FiltersInteriorAndDuplicates(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2},    // interior
		{X: 0, Y: 0},    // duplicate
		{X: 2, Y: 0},    // collinear on bottom edge
	}
	got := geom.ConvexHull(pts, 1e-9)
	assert.Len(t, got, 4)
	assert.InDelta(t, 16.0, geom.AbsArea(got), 1e-9)
}
