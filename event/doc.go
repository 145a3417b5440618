// Package event implements the sweepline's priority queue: a min-heap of
// site and circle events ordered by their y-coordinate, with lazy
// invalidation of stale circle events.
//
// Queue implements container/heap.Interface directly; the driver enqueues
// through PushSite/PushCircle, which wrap heap.Push, and dequeues through
// PopValid, which wraps heap.Pop with a skip-if-invalidated loop so a stale circle event (one whose middle
// arc has since been removed from the beachline) is silently discarded
// rather than acted on.
package event
