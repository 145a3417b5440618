package dcel

import "github.com/hwang/fortune-voronoi/geom"

// DCEL is the append-only doubly-connected edge list for a single Voronoi
// construction. The zero value is not usable; construct with New.
type DCEL struct {
	sites     []Site
	faces     []Face
	halfEdges []HalfEdge
	vertices  []Vertex
}

// New returns an empty DCEL.
func New() *DCEL {
	return &DCEL{}
}

// AddSite appends a new site at p and returns its handle. The site's Face
// starts as NoFace until AddFace links one to it.
func (d *DCEL) AddSite(p geom.Point) SiteHandle {
	h := SiteHandle(len(d.sites))
	d.sites = append(d.sites, Site{Index: int(h), Point: p, Face: NoFace})
	return h
}

// AddFace appends a new face bijective with site and returns its handle.
// It also back-links the site to the new face.
func (d *DCEL) AddFace(site SiteHandle) FaceHandle {
	h := FaceHandle(len(d.faces))
	d.faces = append(d.faces, Face{Site: site, Edge: NoHalfEdge})
	d.sites[site].Face = h
	return h
}

// AddHalfEdge appends a new half-edge incident to face, with unset
// origin/destination/twin/prev/next. If face has no bound edge yet, this
// half-edge becomes it.
func (d *DCEL) AddHalfEdge(face FaceHandle) HalfEdgeHandle {
	h := HalfEdgeHandle(len(d.halfEdges))
	d.halfEdges = append(d.halfEdges, HalfEdge{
		Origin:       NoVertex,
		Destination:  NoVertex,
		IncidentFace: face,
		Twin:         NoHalfEdge,
		Prev:         NoHalfEdge,
		Next:         NoHalfEdge,
	})
	if d.faces[face].Edge == NoHalfEdge {
		d.faces[face].Edge = h
	}
	return h
}

// AddVertex appends a new vertex at p and returns its handle.
func (d *DCEL) AddVertex(p geom.Point) VertexHandle {
	h := VertexHandle(len(d.vertices))
	d.vertices = append(d.vertices, Vertex{Point: p})
	return h
}

// NewTwinPair allocates two half-edges, incident to faceA and faceB
// respectively, and wires them as each other's twin. It is the common
// case used by both the site-event and circle-event handlers, which
// always create edges in twinned pairs.
func (d *DCEL) NewTwinPair(faceA, faceB FaceHandle) (a, b HalfEdgeHandle) {
	a = d.AddHalfEdge(faceA)
	b = d.AddHalfEdge(faceB)
	d.SetTwins(a, b)
	return a, b
}

// SetTwins links a and b as each other's twin half-edge.
func (d *DCEL) SetTwins(a, b HalfEdgeHandle) {
	d.halfEdges[a].Twin = b
	d.halfEdges[b].Twin = a
}

// SetOrigin sets the origin vertex of half-edge h.
func (d *DCEL) SetOrigin(h HalfEdgeHandle, v VertexHandle) {
	d.halfEdges[h].Origin = v
}

// SetDestination sets the destination vertex of half-edge h.
func (d *DCEL) SetDestination(h HalfEdgeHandle, v VertexHandle) {
	d.halfEdges[h].Destination = v
}

// SetNext sets h's next half-edge in its incident face's boundary walk.
func (d *DCEL) SetNext(h, next HalfEdgeHandle) {
	d.halfEdges[h].Next = next
}

// SetPrev sets h's previous half-edge in its incident face's boundary walk.
func (d *DCEL) SetPrev(h, prev HalfEdgeHandle) {
	d.halfEdges[h].Prev = prev
}

// Link sets a.Next = b and b.Prev = a in one call.
func (d *DCEL) Link(a, b HalfEdgeHandle) {
	d.SetNext(a, b)
	d.SetPrev(b, a)
}

// Site returns the site stored at handle h.
func (d *DCEL) Site(h SiteHandle) Site { return d.sites[h] }

// Face returns the face stored at handle h.
func (d *DCEL) Face(h FaceHandle) Face { return d.faces[h] }

// HalfEdge returns the half-edge stored at handle h.
func (d *DCEL) HalfEdge(h HalfEdgeHandle) HalfEdge { return d.halfEdges[h] }

// Vertex returns the vertex stored at handle h.
func (d *DCEL) Vertex(h VertexHandle) Vertex { return d.vertices[h] }

// Sites returns a copy of all sites, in creation (index) order.
func (d *DCEL) Sites() []Site { return append([]Site(nil), d.sites...) }

// Faces returns a copy of all faces, in creation order.
func (d *DCEL) Faces() []Face { return append([]Face(nil), d.faces...) }

// HalfEdges returns a copy of all half-edges, in creation order.
func (d *DCEL) HalfEdges() []HalfEdge { return append([]HalfEdge(nil), d.halfEdges...) }

// Vertices returns a copy of all vertices, in creation order.
func (d *DCEL) Vertices() []Vertex { return append([]Vertex(nil), d.vertices...) }

// WalkFace returns the half-edge handles forming face f's boundary walk,
// starting at its bound edge and following Next until back at the start.
// It returns nil if f has no bound edge yet, and stops (returning the
// partial walk so far) if the walk does not close within len(halfEdges)
// steps, which would indicate a linking bug upstream rather than a valid
// open boundary.
func (d *DCEL) WalkFace(f FaceHandle) []HalfEdgeHandle {
	start := d.faces[f].Edge
	if start == NoHalfEdge {
		return nil
	}
	walk := []HalfEdgeHandle{start}
	cur := d.halfEdges[start].Next
	for cur != start && cur != NoHalfEdge && len(walk) <= len(d.halfEdges) {
		walk = append(walk, cur)
		cur = d.halfEdges[cur].Next
	}
	return walk
}
