package fortune

import "errors"

// ErrUnknownMetric is returned by metric-name resolution layers built on
// top of this package (the core itself only ever accepts a metric.Metric
// value, so New never returns it directly).
var ErrUnknownMetric = errors.New("fortune: unknown metric")

// ErrDegenerateInput is returned by Construct, alongside a still-usable
// *Diagram, when WithDebugAssertions is enabled and every site turns out
// to be collinear.
var ErrDegenerateInput = errors.New("fortune: degenerate input (collinear sites)")

// ErrEmptySites is returned by New when called with zero sites.
var ErrEmptySites = errors.New("fortune: at least one site is required")
