package dcel

import "github.com/hwang/fortune-voronoi/geom"

// SiteHandle, FaceHandle, HalfEdgeHandle and VertexHandle index into a
// DCEL's internal arenas. The zero value of each is a valid handle (index
// 0); use the No* sentinels below to represent "not yet set".
type (
	SiteHandle     int
	FaceHandle     int
	HalfEdgeHandle int
	VertexHandle   int
)

// Sentinels for not-yet-linked handles.
const (
	NoSite     SiteHandle     = -1
	NoFace     FaceHandle     = -1
	NoHalfEdge HalfEdgeHandle = -1
	NoVertex   VertexHandle   = -1
)

// Site is an immutable input point. It is created once, during
// construction, and never mutated afterwards.
type Site struct {
	Index int
	Point geom.Point
	Face  FaceHandle
}

// Vertex is a Voronoi vertex: a point equidistant from three or more
// sites. Vertices are created by circle events and by the bounding pass,
// and are never mutated after creation.
type Vertex struct {
	Point geom.Point
}

// HalfEdge is one direction of a Voronoi edge. Origin and Destination are
// NoVertex until the sweep (or the bounding pass) assigns them.
type HalfEdge struct {
	Origin       VertexHandle
	Destination  VertexHandle
	IncidentFace FaceHandle
	Twin         HalfEdgeHandle
	Prev         HalfEdgeHandle
	Next         HalfEdgeHandle
}

// Face is one Voronoi cell, bijective with a Site. Edge is NoHalfEdge
// until the first half-edge bordering this face is added.
type Face struct {
	Site SiteHandle
	Edge HalfEdgeHandle
}
