package metric

import "github.com/hwang/fortune-voronoi/geom"

// Point is a local alias for geom.Point, used throughout this package so
// implementation files need not import geom directly.
type Point = geom.Point

// Metric is the pluggable distance/geometry contract the Fortune driver
// consumes. Implementations must be pure functions of their arguments.
type Metric interface {
	// Breakpoint returns the x-coordinate where the parabolas focused at
	// left and right, with directrix at y = sweepY, intersect — choosing
	// whichever of the two parabola intersections is consistent with
	// left being ordered before right on the beachline.
	Breakpoint(left, right geom.Point, sweepY float64) float64

	// ConvergencePoint returns the y-coordinate at which the circle
	// through p1, p2, p3 becomes tangent to the sweepline from above
	// (center.Y - radius), and the circle's center. ok is false if the
	// three points are collinear or otherwise yield no finite circle;
	// the driver treats ok == false as "no event".
	ConvergencePoint(p1, p2, p3 geom.Point) (yEvent float64, center geom.Point, ok bool)
}
