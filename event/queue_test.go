package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwang/fortune-voronoi/event"
	"github.com/hwang/fortune-voronoi/geom"
)

func TestQueuePopsInDescendingY(t *testing.T) {
	q := event.NewQueue()
	q.PushSite(0, geom.Point{X: 0, Y: 1})
	q.PushSite(1, geom.Point{X: 0, Y: 5})
	q.PushSite(2, geom.Point{X: 0, Y: 3})

	invalidated := map[event.Handle]struct{}{}
	var ys []float64
	for e := q.PopValid(invalidated); e != nil; e = q.PopValid(invalidated) {
		ys = append(ys, e.Y)
	}
	require.Equal(t, []float64{5, 3, 1}, ys)
}

func TestPopValidSkipsInvalidated(t *testing.T) {
	q := event.NewQueue()
	q.PushSite(0, geom.Point{X: 0, Y: 5})
	stale := q.PushSite(1, geom.Point{X: 0, Y: 4})
	q.PushSite(2, geom.Point{X: 0, Y: 3})

	invalidated := map[event.Handle]struct{}{stale.Handle(): {}}

	first := q.PopValid(invalidated)
	require.Equal(t, 5.0, first.Y)

	second := q.PopValid(invalidated)
	require.Equal(t, 3.0, second.Y, "the invalidated Y=4 event must be skipped")

	require.Empty(t, invalidated, "PopValid must consume invalidation entries as it skips them")
}

func TestQueueTieBreaksByCreationOrder(t *testing.T) {
	q := event.NewQueue()
	first := q.PushSite(0, geom.Point{X: 0, Y: 2})
	second := q.PushSite(1, geom.Point{X: 1, Y: 2})

	invalidated := map[event.Handle]struct{}{}
	popped := q.PopValid(invalidated)
	require.Equal(t, first.Handle(), popped.Handle())

	popped = q.PopValid(invalidated)
	require.Equal(t, second.Handle(), popped.Handle())
}
