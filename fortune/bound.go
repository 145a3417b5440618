package fortune

import (
	"math"

	"go.uber.org/zap"

	"github.com/hwang/fortune-voronoi/beachline"
	"github.com/hwang/fortune-voronoi/dcel"
	"github.com/hwang/fortune-voronoi/geom"
)

// Bound closes every dangling half-edge against box, first expanded (if
// necessary) to enclose every site and every interior vertex produced
// during Construct. Call it exactly once, after Construct.
func (d *Diagram) Bound(box geom.Rect) {
	d.logger.Info("bound start")

	expanded := box
	for _, s := range d.dc.Sites() {
		expanded = expanded.Expand(s.Point)
	}
	for _, v := range d.dc.Vertices() {
		expanded = expanded.Expand(v.Point)
	}

	// A single remaining arc (n == 1) has no adjacent pairs at all, so the loop below never runs and
	// no edge ever gets created. Record the box corners directly so a
	// lone cell still has recognizable boundary vertices, without taking
	// on full cell-polygon closure for cells that do have edges: doing
	// this unconditionally would add four isolated vertices to every
	// diagram and break the Euler-formula invariant for the edge
	// skeleton (see diagram_properties_test.go).
	if len(d.dc.HalfEdges()) == 0 {
		d.dc.AddVertex(geom.Point{X: expanded.XLeft, Y: expanded.YLeft})
		d.dc.AddVertex(geom.Point{X: expanded.XRight, Y: expanded.YLeft})
		d.dc.AddVertex(geom.Point{X: expanded.XRight, Y: expanded.YRight})
		d.dc.AddVertex(geom.Point{X: expanded.XLeft, Y: expanded.YRight})
	}

	if !d.bl.IsEmpty() {
		arc := d.bl.GetLeftmostArc()
		for next := arc.NextArc(); next != nil; arc, next = next, next.NextArc() {
			d.closeEdge(arc, next, expanded)
		}
	}

	d.bounded = true
	if d.debugAssertions {
		d.assertFullyBounded()
	}

	d.logger.Info("bound end",
		zap.Float64("box_x_left", expanded.XLeft),
		zap.Float64("box_y_left", expanded.YLeft),
		zap.Float64("box_x_right", expanded.XRight),
		zap.Float64("box_y_right", expanded.YRight))
}

// closeEdge closes whichever ends of the edge shared by arc and next
// (arc.RightEdge, twinned with next.LeftEdge) a circle event left open,
// by intersecting a ray from the two sites' midpoint, in the appropriate
// perpendicular direction, against box.
func (d *Diagram) closeEdge(arc, next *beachline.Arc, box geom.Rect) {
	he := arc.RightEdge
	mid := geom.Midpoint(arc.SitePoint, next.SitePoint)
	dir := geom.Perpendicular(geom.Direction{
		X: next.SitePoint.X - arc.SitePoint.X,
		Y: next.SitePoint.Y - arc.SitePoint.Y,
	})

	if d.dc.HalfEdge(he).Origin == dcel.NoVertex {
		p := rayBoxIntersect(mid, geom.Direction{X: -dir.X, Y: -dir.Y}, box)
		v := d.dc.AddVertex(p)
		d.dc.SetOrigin(he, v)
		d.dc.SetDestination(d.dc.HalfEdge(he).Twin, v)
	}
	if d.dc.HalfEdge(he).Destination == dcel.NoVertex {
		p := rayBoxIntersect(mid, dir, box)
		v := d.dc.AddVertex(p)
		d.dc.SetDestination(he, v)
		d.dc.SetOrigin(d.dc.HalfEdge(he).Twin, v)
	}
}

// rayBoxIntersect intersects the ray from o in direction d with box,
// returning the first boundary point the ray crosses. A direction
// component within geom.Epsilon of zero never intersects its
// corresponding pair of sides, so its candidate t is +Inf rather than
// undefined — resolving the ambiguity left open by a purely symbolic
// treatment of a vertical or horizontal ray.
func rayBoxIntersect(o, d geom.Point, box geom.Rect) geom.Point {
	t1 := math.Inf(1)
	switch {
	case d.X > geom.Epsilon:
		t1 = (box.XRight - o.X) / d.X
	case d.X < -geom.Epsilon:
		t1 = (box.XLeft - o.X) / d.X
	}

	t2 := math.Inf(1)
	switch {
	case d.Y > geom.Epsilon:
		t2 = (box.YRight - o.Y) / d.Y
	case d.Y < -geom.Epsilon:
		t2 = (box.YLeft - o.Y) / d.Y
	}

	t := t1
	if t2 < t {
		t = t2
	}

	return geom.Point{X: o.X + t*d.X, Y: o.Y + t*d.Y}
}

// assertFullyBounded panics if any half-edge still lacks an origin or
// destination after Bound, a debug-only internal-consistency check.
func (d *Diagram) assertFullyBounded() {
	for _, he := range d.dc.HalfEdges() {
		if he.Origin == dcel.NoVertex || he.Destination == dcel.NoVertex {
			panic("fortune: half-edge still open after Bound")
		}
	}
}
