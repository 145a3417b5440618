// Package metric defines the pluggable distance metric consumed by the
// Fortune driver: breakpoint computation between two beachline arcs, and
// the circumcenter/circle-event time for three sites. The core sweep is
// metric-agnostic; Euclidean is provided as the default implementation.
package metric
