package beachline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwang/fortune-voronoi/beachline"
	"github.com/hwang/fortune-voronoi/geom"
	"github.com/hwang/fortune-voronoi/metric"
)

func TestEmptyBeachline(t *testing.T) {
	b := beachline.New()
	require.True(t, b.IsEmpty())
	require.Nil(t, b.GetLeftmostArc())
}

func TestSetRootSingleArc(t *testing.T) {
	b := beachline.New()
	arc := beachline.NewArc(0, geom.Point{X: 0, Y: 0})
	b.SetRoot(arc)

	require.False(t, b.IsEmpty())
	require.Same(t, arc, b.GetLeftmostArc())
	require.Nil(t, arc.PrevArc())
	require.Nil(t, arc.NextArc())
}

func TestSetRootOnNonEmptyPanics(t *testing.T) {
	b := beachline.New()
	b.SetRoot(beachline.NewArc(0, geom.Point{X: 0, Y: 0}))
	require.Panics(t, func() {
		b.SetRoot(beachline.NewArc(1, geom.Point{X: 1, Y: 1}))
	})
}

// threeArcSplit builds the beachline left/middle/right shape produced by a
// site event landing above an existing arc: Replace(above, left) then
// InsertAfter(left, middle), InsertAfter(middle, right).
func threeArcSplit(t *testing.T) (b *beachline.Beachline, left, middle, right *beachline.Arc) {
	t.Helper()
	b = beachline.New()
	above := beachline.NewArc(0, geom.Point{X: 0, Y: 2})
	b.SetRoot(above)

	left = beachline.NewArc(0, geom.Point{X: 0, Y: 2})
	middle = beachline.NewArc(1, geom.Point{X: 0, Y: 0})
	right = beachline.NewArc(2, geom.Point{X: 0, Y: 2})

	b.Replace(above, left)
	b.InsertAfter(left, middle)
	b.InsertAfter(middle, right)
	return b, left, middle, right
}

func TestThreeArcSplitOrdering(t *testing.T) {
	b, left, middle, right := threeArcSplit(t)

	require.Same(t, left, b.GetLeftmostArc())
	require.Nil(t, left.PrevArc())
	require.Same(t, middle, left.NextArc())
	require.Same(t, left, middle.PrevArc())
	require.Same(t, right, middle.NextArc())
	require.Same(t, middle, right.PrevArc())
	require.Nil(t, right.NextArc())
}

func TestInsertBeforeOrdering(t *testing.T) {
	b := beachline.New()
	first := beachline.NewArc(0, geom.Point{X: -5, Y: 0})
	b.SetRoot(first)

	newFirst := beachline.NewArc(1, geom.Point{X: -10, Y: 0})
	b.InsertBefore(first, newFirst)

	require.Same(t, newFirst, b.GetLeftmostArc())
	require.Same(t, first, newFirst.NextArc())
	require.Same(t, newFirst, first.PrevArc())
}

func TestDeleteMiddleArcCollapsesParent(t *testing.T) {
	b, left, middle, right := threeArcSplit(t)

	b.Delete(middle)

	require.Same(t, left, b.GetLeftmostArc())
	require.Same(t, right, left.NextArc())
	require.Same(t, left, right.PrevArc())
	require.Nil(t, left.PrevArc())
	require.Nil(t, right.NextArc())
}

func TestDeleteSoleArcEmptiesBeachline(t *testing.T) {
	b := beachline.New()
	arc := beachline.NewArc(0, geom.Point{X: 0, Y: 0})
	b.SetRoot(arc)

	b.Delete(arc)
	require.True(t, b.IsEmpty())
}

func TestGetArcAboveFindsCorrectArc(t *testing.T) {
	b, left, middle, right := threeArcSplit(t)

	m := metric.Euclidean{}
	sweepY := -1.0

	// At sweep y = -1, the lower site at (0,0) has carved an arc spanning
	// roughly x in [-1.73, 1.73] out of the arc for (0,2); querying far to
	// the left or right should still land on the two original-site arcs,
	// and querying directly beneath the new site should land on its own arc.
	above := b.GetArcAbove(geom.Point{X: -100, Y: 0}, sweepY, m)
	require.Same(t, left, above)

	above = b.GetArcAbove(geom.Point{X: 100, Y: 0}, sweepY, m)
	require.Same(t, right, above)

	above = b.GetArcAbove(geom.Point{X: 0, Y: 0}, sweepY, m)
	require.Same(t, middle, above)
}
