package fortune

import (
	"go.uber.org/zap"

	"github.com/hwang/fortune-voronoi/beachline"
	"github.com/hwang/fortune-voronoi/dcel"
	"github.com/hwang/fortune-voronoi/event"
	"github.com/hwang/fortune-voronoi/geom"
	"github.com/hwang/fortune-voronoi/metric"
)

// Diagram holds everything produced by a single Voronoi construction: the
// DCEL being built, the beachline and event queue driving the sweep, and
// the configuration chosen at New. It is not safe for concurrent use —
// callers must confine a Diagram to one goroutine for its whole lifetime.
type Diagram struct {
	dc    *dcel.DCEL
	bl    *beachline.Beachline
	queue *event.Queue

	invalidated map[event.Handle]struct{}

	metric          metric.Metric
	logger          *zap.Logger
	debugAssertions bool

	sites  []geom.Point
	sweepY float64

	bounded bool
}

// New builds a Diagram over sites, ready for Construct. sites must be
// non-empty; duplicate points are accepted and produce degenerate cells,
// which is the caller's problem per the package's external-interface
// contract.
func New(sites []geom.Point, opts ...Option) (*Diagram, error) {
	if len(sites) == 0 {
		return nil, ErrEmptySites
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Diagram{
		dc:              dcel.New(),
		bl:              beachline.New(),
		queue:           event.NewQueue(),
		invalidated:     make(map[event.Handle]struct{}),
		metric:          o.metric,
		logger:          o.logger,
		debugAssertions: o.debugAssertions,
		sites:           append([]geom.Point(nil), sites...),
	}, nil
}

// Sites returns the constructed sites, in index order.
func (d *Diagram) Sites() []dcel.Site { return d.dc.Sites() }

// Faces returns the constructed faces, in creation order.
func (d *Diagram) Faces() []dcel.Face { return d.dc.Faces() }

// Vertices returns the constructed vertices, in creation order.
func (d *Diagram) Vertices() []dcel.Vertex { return d.dc.Vertices() }

// HalfEdges returns the constructed half-edges, in creation order.
func (d *Diagram) HalfEdges() []dcel.HalfEdge { return d.dc.HalfEdges() }

// WalkFace walks face f's boundary; see dcel.DCEL.WalkFace.
func (d *Diagram) WalkFace(f dcel.FaceHandle) []dcel.HalfEdgeHandle {
	return d.dc.WalkFace(f)
}

// sitesCollinear reports whether every site lies on one line, used by
// Construct's debug-assertion pass.
func (d *Diagram) sitesCollinear() bool {
	if len(d.sites) < 3 {
		return true
	}
	p0 := d.sites[0]
	var dirX, dirY float64
	haveDir := false
	for _, p := range d.sites[1:] {
		dx, dy := p.X-p0.X, p.Y-p0.Y
		if dx == 0 && dy == 0 {
			continue
		}
		if !haveDir {
			dirX, dirY = dx, dy
			haveDir = true
			continue
		}
		cross := dirX*dy - dirY*dx
		if !geom.AlmostEqual(cross, 0) {
			return false
		}
	}
	return true
}
