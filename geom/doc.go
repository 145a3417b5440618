// Package geom provides the 2D geometric primitives shared by the rest of
// this module: points, axis-aligned rectangles, and the numeric tolerance
// used when classifying directions during the bounding pass.
//
// Points are a type alias over gonum's spatial/r2.Vec so callers can mix
// this package's helpers with gonum's own vector arithmetic (r2.Add,
// r2.Sub, r2.Scale) without a conversion step.
package geom
