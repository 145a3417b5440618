package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a location in the plane. It is a type alias over r2.Vec so that
// gonum's vector helpers (r2.Add, r2.Sub, r2.Scale, ...) work directly on
// values of this type.
type Point = r2.Vec

// Epsilon is the tolerance used for direction classification in the
// bounding pass and for equidistance assertions in tests. It is
// deliberately not used anywhere in the sweep's event ordering itself,
// which relies on raw float comparisons to stay deterministic.
const Epsilon = 1e-6

// AlmostEqual reports whether a and b differ by no more than Epsilon.
func AlmostEqual(a, b float64) bool {
	return floats.EqualWithinAbs(a, b, Epsilon)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	d := r2.Sub(a, b)
	return math.Hypot(d.X, d.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return r2.Scale(0.5, r2.Add(a, b))
}

// Direction is a 2D vector used to describe rays (origin + direction),
// distinct from Point only by convention: a Direction need not be a
// location, just an orientation.
type Direction = r2.Vec

// Perpendicular returns a vector rotated 90 degrees counter-clockwise from d.
func Perpendicular(d Direction) Direction {
	return Direction{X: -d.Y, Y: d.X}
}
