package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwang/fortune-voronoi/geom"
	"github.com/hwang/fortune-voronoi/metric"
)

func TestBreakpointSameHeightIsMidpoint(t *testing.T) {
	e := metric.Euclidean{}
	x := e.Breakpoint(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, -5)
	require.InDelta(t, 2.0, x, 1e-9)
}

func TestBreakpointFocusOnDirectrix(t *testing.T) {
	e := metric.Euclidean{}
	x := e.Breakpoint(geom.Point{X: 3, Y: 1}, geom.Point{X: 9, Y: 5}, 1)
	require.InDelta(t, 3.0, x, 1e-9)
}

func TestConvergencePointCircumcenter(t *testing.T) {
	e := metric.Euclidean{}
	// Matches end-to-end scenario 1 in the spec: sites (0,0),(2,0),(1,2).
	yEvent, center, ok := e.ConvergencePoint(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 2, Y: 0},
		geom.Point{X: 1, Y: 2},
	)
	require.True(t, ok)
	require.InDelta(t, 1.0, center.X, 1e-9)
	require.InDelta(t, 0.75, center.Y, 1e-9)
	radius := geom.Dist(center, geom.Point{X: 0, Y: 0})
	require.InDelta(t, center.Y-radius, yEvent, 1e-9)
}

func TestConvergencePointCollinearIsInvalid(t *testing.T) {
	e := metric.Euclidean{}
	_, _, ok := e.ConvergencePoint(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 1, Y: 0},
		geom.Point{X: 2, Y: 0},
	)
	require.False(t, ok)
}
