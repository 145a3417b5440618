package beachline

import (
	"github.com/hwang/fortune-voronoi/dcel"
	"github.com/hwang/fortune-voronoi/event"
	"github.com/hwang/fortune-voronoi/geom"
)

// Arc is a node of the beachline tree. Leaves represent beachline arcs
// (one per currently-visible parabola); internal nodes represent
// breakpoints, and carry no site or edges of their own — their x-position
// is derived on demand from the rightmost leaf of their left subtree and
// the leftmost leaf of their right subtree.
type Arc struct {
	// Site and SitePoint are only meaningful when IsLeaf() is true.
	// SitePoint is cached at construction time since sites are immutable,
	// sparing GetArcAbove a DCEL lookup on every descent.
	Site      dcel.SiteHandle
	SitePoint geom.Point

	// LeftEdge and RightEdge are the half-edges bordering this arc in the
	// DCEL, populated incrementally as the sweep progresses. Only
	// meaningful for leaves.
	LeftEdge, RightEdge dcel.HalfEdgeHandle

	// Event is this arc's pending circle event (where this arc is the
	// middle of the triple), or nil if none is currently scheduled.
	Event *event.Event

	parent, left, right *Arc
}

// NewArc returns a new leaf arc for the given site.
func NewArc(site dcel.SiteHandle, sitePoint geom.Point) *Arc {
	return &Arc{
		Site:      site,
		SitePoint: sitePoint,
		LeftEdge:  dcel.NoHalfEdge,
		RightEdge: dcel.NoHalfEdge,
	}
}

// IsLeaf reports whether a represents a beachline arc (as opposed to an
// internal breakpoint node).
func (a *Arc) IsLeaf() bool {
	return a != nil && a.left == nil && a.right == nil
}

// leftmostDescendant returns the leftmost leaf under a (a itself if a is
// already a leaf).
func (a *Arc) leftmostDescendant() *Arc {
	n := a
	for n != nil && !n.IsLeaf() {
		if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// rightmostDescendant returns the rightmost leaf under a (a itself if a
// is already a leaf).
func (a *Arc) rightmostDescendant() *Arc {
	n := a
	for n != nil && !n.IsLeaf() {
		if n.right != nil {
			n = n.right
		} else {
			n = n.left
		}
	}
	return n
}

// prevBreakpointArc and nextBreakpointArc return the arcs flanking an
// internal (breakpoint) node: the rightmost leaf of its left subtree, and
// the leftmost leaf of its right subtree, respectively.
func (a *Arc) prevBreakpointArc() *Arc { return a.left.rightmostDescendant() }
func (a *Arc) nextBreakpointArc() *Arc { return a.right.leftmostDescendant() }

// PrevArc returns the beachline arc immediately to the left of a (which
// may itself be an internal node, in which case its own rightmost leaf's
// predecessor is returned), or nil if a is the leftmost arc.
func (a *Arc) PrevArc() *Arc {
	if a == nil {
		return nil
	}
	if !a.IsLeaf() {
		return a.rightmostDescendant().PrevArc()
	}
	node := a
	parent := a.parent
	for parent != nil && parent.left == node {
		node = parent
		parent = parent.parent
	}
	if parent == nil {
		return nil
	}
	return parent.left.rightmostDescendant()
}

// NextArc returns the beachline arc immediately to the right of a, or nil
// if a is the rightmost arc.
func (a *Arc) NextArc() *Arc {
	if a == nil {
		return nil
	}
	if !a.IsLeaf() {
		return a.leftmostDescendant().NextArc()
	}
	node := a
	parent := a.parent
	for parent != nil && parent.right == node {
		node = parent
		parent = parent.parent
	}
	if parent == nil {
		return nil
	}
	return parent.right.leftmostDescendant()
}
