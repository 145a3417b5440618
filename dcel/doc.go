// Package dcel implements the doubly-connected edge list that backs a
// Voronoi diagram: Sites, Faces, HalfEdges and Vertices, stored in
// append-only arenas and referenced by handle rather than by pointer.
//
// Handles (SiteHandle, FaceHandle, HalfEdgeHandle, VertexHandle) are plain
// ints indexing into the DCEL's internal slices. This sidesteps the
// aliasing problems that come from taking the address of a slice element
// that may later be reallocated by append, and gives cheap, comparable
// identity for use as map keys (the event package's invalidation set keys
// off of handles for exactly this reason).
//
// The DCEL never removes an entry once added; construction only appends.
package dcel
