// Package fortune drives Fortune's sweepline construction of a Voronoi
// diagram: it owns the event loop, dispatches site and circle events
// against the beachline and DCEL packages, and exposes the resulting
// diagram through read-only accessors. It is the package a caller
// imports; geom, metric, dcel, beachline and event are its collaborators.
package fortune
