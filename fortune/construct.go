package fortune

import (
	"go.uber.org/zap"

	"github.com/hwang/fortune-voronoi/beachline"
	"github.com/hwang/fortune-voronoi/dcel"
	"github.com/hwang/fortune-voronoi/event"
)

// Construct seeds one site-event per site and runs the sweep to
// completion, populating the DCEL with sites, faces, interior vertices
// and half-edges. Call Bound afterward to close the remaining dangling
// half-edges against a rectangle.
//
// If WithDebugAssertions is set and every site turns out to be
// collinear, Construct returns ErrDegenerateInput alongside a Diagram
// that is otherwise fully built (degenerate, not broken).
func (d *Diagram) Construct() error {
	d.logger.Info("construct start", zap.Int("site_count", len(d.sites)))

	for i, p := range d.sites {
		sh := d.dc.AddSite(p)
		d.dc.AddFace(sh)
		d.queue.PushSite(i, p)
	}

	for {
		e := d.queue.PopValid(d.invalidated)
		if e == nil {
			break
		}
		d.sweepY = e.Y
		switch e.Kind {
		case event.Site:
			d.handleSiteEvent(e)
		case event.Circle:
			d.handleCircleEvent(e)
		}
	}

	if d.debugAssertions && d.sitesCollinear() {
		d.logger.Info("construct end", zap.Bool("degenerate", true))
		return ErrDegenerateInput
	}

	d.logger.Info("construct end")
	return nil
}

func (d *Diagram) handleSiteEvent(e *event.Event) {
	siteIndex := e.Site.SiteIndex
	p := e.Site.Point
	site := dcel.SiteHandle(siteIndex)

	d.logger.Debug("site event",
		zap.Int("site_index", siteIndex),
		zap.Float64("sweep_y", d.sweepY))

	if d.bl.IsEmpty() {
		d.bl.SetRoot(beachline.NewArc(site, p))
		return
	}

	above := d.bl.GetArcAbove(p, d.sweepY, d.metric)
	if above.Event != nil {
		d.invalidated[above.Event.Handle()] = struct{}{}
		above.Event = nil
	}

	left := beachline.NewArc(above.Site, above.SitePoint)
	middle := beachline.NewArc(site, p)
	right := beachline.NewArc(above.Site, above.SitePoint)
	left.LeftEdge = above.LeftEdge
	right.RightEdge = above.RightEdge

	d.bl.Replace(above, left)
	d.bl.InsertAfter(left, middle)
	d.bl.InsertAfter(middle, right)

	leftFace := d.dc.Site(left.Site).Face
	middleFace := d.dc.Site(middle.Site).Face

	newL, newM := d.dc.NewTwinPair(leftFace, middleFace)
	left.RightEdge = newL
	middle.LeftEdge = newM
	middle.RightEdge = newM
	right.LeftEdge = newL

	d.addCircleEvent(left.PrevArc(), left, middle)
	d.addCircleEvent(middle, right, right.NextArc())
}

func (d *Diagram) handleCircleEvent(e *event.Event) {
	middle := e.Circle.MiddleArc.(*beachline.Arc)
	center := e.Circle.Center

	d.logger.Debug("circle event", zap.Float64("sweep_y", d.sweepY))

	vertex := d.dc.AddVertex(center)

	left := middle.PrevArc()
	right := middle.NextArc()

	if left.Event != nil {
		d.invalidated[left.Event.Handle()] = struct{}{}
		left.Event = nil
	}
	if right.Event != nil {
		d.invalidated[right.Event.Handle()] = struct{}{}
		right.Event = nil
	}

	// leftOuter/rightOuter are the twins of middle's own two edges, by
	// the twin invariant maintained since each was created: every edge
	// bordering middle on one side is the twin of the edge that borders
	// its neighbor on the matching side.
	leftOuter := d.dc.HalfEdge(middle.LeftEdge).Twin
	rightOuter := d.dc.HalfEdge(middle.RightEdge).Twin

	d.dc.SetOrigin(leftOuter, vertex)
	d.dc.SetDestination(middle.LeftEdge, vertex)
	d.dc.SetOrigin(middle.RightEdge, vertex)
	d.dc.SetDestination(rightOuter, vertex)
	d.dc.Link(middle.LeftEdge, middle.RightEdge)

	d.bl.Delete(middle)

	leftFace := d.dc.Site(left.Site).Face
	rightFace := d.dc.Site(right.Site).Face
	newLR, newRL := d.dc.NewTwinPair(leftFace, rightFace)
	d.dc.SetDestination(newLR, vertex)
	d.dc.SetOrigin(newRL, vertex)
	d.dc.Link(newLR, leftOuter)
	d.dc.Link(rightOuter, newRL)

	left.RightEdge = newLR
	right.LeftEdge = newRL

	d.addCircleEvent(left.PrevArc(), left, right)
	d.addCircleEvent(left, right, right.NextArc())
}

// addCircleEvent validates a candidate circle event for the consecutive
// triple (left, middle, right) and, if it would fire at or below the
// current sweep line and the breakpoints are actually converging toward
// the candidate center, enqueues it and stores it on middle.
func (d *Diagram) addCircleEvent(left, middle, right *beachline.Arc) {
	if left == nil || middle == nil || right == nil {
		return
	}

	yEvent, center, ok := d.metric.ConvergencePoint(left.SitePoint, middle.SitePoint, right.SitePoint)
	if !ok {
		return
	}
	if yEvent > d.sweepY {
		return
	}

	leftMovingRight := left.SitePoint.Y < middle.SitePoint.Y
	rightMovingRight := middle.SitePoint.Y < right.SitePoint.Y

	leftBreakpointX := middle.SitePoint.X
	if leftMovingRight {
		leftBreakpointX = left.SitePoint.X
	}
	rightBreakpointX := right.SitePoint.X
	if rightMovingRight {
		rightBreakpointX = middle.SitePoint.X
	}

	if leftMovingRight && leftBreakpointX > center.X {
		return
	}
	if !leftMovingRight && leftBreakpointX < center.X {
		return
	}
	if rightMovingRight && rightBreakpointX > center.X {
		return
	}
	if !rightMovingRight && rightBreakpointX < center.X {
		return
	}

	ev := d.queue.PushCircle(yEvent, center, middle)
	middle.Event = ev

	d.logger.Debug("circle event scheduled",
		zap.Float64("y_event", yEvent),
		zap.Float64("center_x", center.X),
		zap.Float64("center_y", center.Y))
}
