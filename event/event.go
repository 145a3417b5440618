package event

import "github.com/hwang/fortune-voronoi/geom"

// Kind distinguishes a site event (a new site enters the beachline) from
// a circle event (a beachline arc is about to be squeezed out).
type Kind int

const (
	Site Kind = iota
	Circle
)

// Handle is a unique, comparable identity for an Event, usable as a map
// key in the driver's invalidation set. It is independent of the event's
// position in the heap, which changes as the heap is rearranged.
type Handle int

// SitePayload is carried by a Site event.
type SitePayload struct {
	SiteIndex int
	Point     geom.Point
}

// CirclePayload is carried by a Circle event: the convergence point and
// the arc about to be squeezed out of the beachline. MiddleArc is an
// opaque value set and interpreted by the fortune package (it holds a
// *beachline.Arc); Queue itself never dereferences it.
type CirclePayload struct {
	Center    geom.Point
	MiddleArc interface{}
}

// Event is a site or circle event, ordered by Y.
type Event struct {
	handle Handle
	seq    int // creation sequence, used to break Y ties deterministically

	Y      float64
	Kind   Kind
	Site   SitePayload
	Circle CirclePayload
}

// Handle returns this event's stable identity.
func (e *Event) Handle() Handle { return e.handle }
