// Package beachline implements the sweepline's beachline: an ordered
// sequence of parabolic arcs, organized as a binary tree whose leaves are
// arcs and whose internal nodes represent breakpoints (the x where two
// neighboring arcs meet at the current sweep y), with neighbor lookup
// done by walking the tree rather than through stored prev/next pointers.
//
// Beachline wraps the leaves-are-arcs / internal-nodes-are-breakpoints
// shape behind GetArcAbove/Replace/InsertBefore/InsertAfter/Delete so
// callers read as sequences of named operations rather than raw tree
// surgery. The tree is intentionally unbalanced: arc-above lookup is
// O(log n) on average and O(n) on adversarial insertion orders, which is
// documented here rather than hidden.
package beachline
