package event

import (
	"container/heap"

	"github.com/hwang/fortune-voronoi/geom"
)

// Queue is a min-priority queue of *Event ordered by decreasing Y (the
// sweep moves from the top of the plane downward, so the "next" event is
// the one with the largest remaining Y), with ties broken by creation
// order for determinism. It implements container/heap.Interface.
type Queue struct {
	items   []*Event
	nextH   Handle
	nextSeq int
}

// NewQueue returns an empty, ready-to-use Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len implements sort.Interface (via heap.Interface).
func (q *Queue) Len() int { return len(q.items) }

// Less implements sort.Interface: larger Y sorts first.
func (q *Queue) Less(i, j int) bool {
	if q.items[i].Y != q.items[j].Y {
		return q.items[i].Y > q.items[j].Y
	}
	return q.items[i].seq < q.items[j].seq
}

// Swap implements sort.Interface.
func (q *Queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// Push implements heap.Interface. Use PushSite/PushCircle instead of
// calling this directly; it exists to satisfy the interface.
func (q *Queue) Push(x interface{}) {
	q.items = append(q.items, x.(*Event))
}

// Pop implements heap.Interface.
func (q *Queue) Pop() interface{} {
	n := len(q.items)
	e := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return e
}

func (q *Queue) newEvent() *Event {
	h := q.nextH
	q.nextH++
	s := q.nextSeq
	q.nextSeq++
	return &Event{handle: h, seq: s}
}

// PushSite creates and enqueues a site event for the given site.
func (q *Queue) PushSite(siteIndex int, p geom.Point) *Event {
	e := q.newEvent()
	e.Y = p.Y
	e.Kind = Site
	e.Site = SitePayload{SiteIndex: siteIndex, Point: p}
	heap.Push(q, e)
	return e
}

// PushCircle creates and enqueues a circle event with the given fire-time
// y and convergence center, associated with middleArc (opaque to this
// package; the fortune package stores a *beachline.Arc here).
func (q *Queue) PushCircle(y float64, center geom.Point, middleArc interface{}) *Event {
	e := q.newEvent()
	e.Y = y
	e.Kind = Circle
	e.Circle = CirclePayload{Center: center, MiddleArc: middleArc}
	heap.Push(q, e)
	return e
}

// PopValid pops events until it finds one whose handle is not in
// invalidated (deleting it from the set along the way so the set does not
// grow without bound), or the queue empties. It returns nil when the
// queue is exhausted.
func (q *Queue) PopValid(invalidated map[Handle]struct{}) *Event {
	for q.Len() > 0 {
		e := heap.Pop(q).(*Event)
		if _, stale := invalidated[e.handle]; stale {
			delete(invalidated, e.handle)
			continue
		}
		return e
	}
	return nil
}
