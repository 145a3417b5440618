package beachline

import (
	"github.com/hwang/fortune-voronoi/geom"
	"github.com/hwang/fortune-voronoi/metric"
)

// Beachline is the ordered sequence of arcs making up the sweepline's
// beachline, represented as a binary tree whose leaves are arcs and whose
// internal nodes are breakpoints.
type Beachline struct {
	root *Arc
}

// New returns an empty Beachline.
func New() *Beachline {
	return &Beachline{}
}

// IsEmpty reports whether the beachline has no arcs yet.
func (b *Beachline) IsEmpty() bool { return b.root == nil }

// SetRoot installs arc as the sole arc of an empty beachline. It panics if
// the beachline is not empty; callers must check IsEmpty first, matching
// the driver's "if the beachline is empty, create a root arc" step.
func (b *Beachline) SetRoot(arc *Arc) {
	if b.root != nil {
		panic("beachline: SetRoot called on a non-empty beachline")
	}
	b.root = arc
}

// GetLeftmostArc returns the leftmost arc in the beachline, or nil if
// empty.
func (b *Beachline) GetLeftmostArc() *Arc {
	if b.root == nil {
		return nil
	}
	return b.root.leftmostDescendant()
}

// GetArcAbove descends the tree comparing point.X against breakpoints
// computed on the fly via m, at the given sweepY. Ties (point.X exactly
// equal to a breakpoint) descend right, treating the breakpoint itself as
// belonging to the arc on its right.
func (b *Beachline) GetArcAbove(point geom.Point, sweepY float64, m metric.Metric) *Arc {
	node := b.root
	for node != nil && !node.IsLeaf() {
		left := node.prevBreakpointArc()
		right := node.nextBreakpointArc()
		x := m.Breakpoint(left.SitePoint, right.SitePoint, sweepY)
		if point.X < x {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// Replace swaps new into old's tree position (parent and children),
// leaving old detached. Both old's subtree and neighbor arcs are
// preserved through the reparenting.
func (b *Beachline) Replace(old, new *Arc) {
	new.parent = old.parent
	new.left = old.left
	new.right = old.right

	if old.parent == nil {
		b.root = new
	} else if old.parent.left == old {
		old.parent.left = new
	} else {
		old.parent.right = new
	}

	if new.left != nil {
		new.left.parent = new
	}
	if new.right != nil {
		new.right.parent = new
	}

	old.parent, old.left, old.right = nil, nil, nil
}

// InsertBefore splices new immediately to the left of pivot: pivot's
// position in the tree becomes an internal (breakpoint) node with new as
// its left child and pivot (re-parented, otherwise unchanged) as its
// right child.
func (b *Beachline) InsertBefore(pivot, newArc *Arc) {
	b.splice(pivot, newArc, true)
}

// InsertAfter splices new immediately to the right of pivot, symmetric to
// InsertBefore.
func (b *Beachline) InsertAfter(pivot, newArc *Arc) {
	b.splice(pivot, newArc, false)
}

func (b *Beachline) splice(pivot, newArc *Arc, before bool) {
	internal := &Arc{}
	internal.parent = pivot.parent

	if pivot.parent == nil {
		b.root = internal
	} else if pivot.parent.left == pivot {
		pivot.parent.left = internal
	} else {
		pivot.parent.right = internal
	}

	if before {
		internal.left, internal.right = newArc, pivot
	} else {
		internal.left, internal.right = pivot, newArc
	}
	internal.left.parent = internal
	internal.right.parent = internal
}

// Delete removes arc from the beachline, unlinking it and collapsing its
// parent internal node so the grandparent takes arc's sibling directly.
// If arc is the sole remaining arc, the beachline becomes empty.
func (b *Beachline) Delete(arc *Arc) {
	parent := arc.parent
	if parent == nil {
		b.root = nil
		return
	}

	var sibling *Arc
	if parent.left == arc {
		sibling = parent.right
	} else {
		sibling = parent.left
	}

	grandparent := parent.parent
	if grandparent == nil {
		b.root = sibling
		sibling.parent = nil
		return
	}

	if grandparent.left == parent {
		grandparent.left = sibling
	} else {
		grandparent.right = sibling
	}
	sibling.parent = grandparent

	arc.parent, arc.left, arc.right = nil, nil, nil
}
