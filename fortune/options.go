package fortune

import (
	"go.uber.org/zap"

	"github.com/hwang/fortune-voronoi/metric"
)

// Options collects New's configurable knobs. Build one only through the
// With* functions below, never by struct literal.
type Options struct {
	metric          metric.Metric
	logger          *zap.Logger
	debugAssertions bool
}

// Option configures a Diagram at construction time.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		metric: metric.Euclidean{},
		logger: zap.NewNop(),
	}
}

// WithMetric overrides the default metric.Euclidean{}.
func WithMetric(m metric.Metric) Option {
	return func(o *Options) { o.metric = m }
}

// WithLogger overrides the default no-op logger. Pass a *zap.Logger built
// with zap.NewProduction() or zap.NewDevelopment() to see the driver's
// per-event trace at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithDebugAssertions enables the collinear-input check reported by
// Construct as ErrDegenerateInput, and a post-Bound pass asserting every
// half-edge has both endpoints set, which panics on violation. Both cost
// an extra traversal, so this is off by default.
func WithDebugAssertions() Option {
	return func(o *Options) { o.debugAssertions = true }
}
