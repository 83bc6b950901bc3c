// Package hierarchy analyses the standpoint order of a framework.
//
// The generator samples order edges independently, so the edge set is not
// transitively closed: s3 ≤ s2 and s2 ≤ s1 do not imply an explicit s3 ≤ s1
// edge. This package makes the implied structure available to consumers
// that need a true partial order.
//
// What:
//
//   - Graph:            directed graph lower → upper over the standpoints.
//   - Graph.Ancestors:  every standpoint reachable from s (more general ones).
//   - Closure:          the transitive closure as a sorted edge set.
//   - IsClosed:         reports whether an edge set already is closed.
//   - TopologicalOrder: most specific standpoints first; ErrCycleDetected if
//     the order is inconsistent.
//
// Complexity:
//
//   - Ancestors:        O(V+E) per call.
//   - Closure:          O(V·(V+E)).
//   - TopologicalOrder: O(V+E).
//
// Errors:
//
//   - ErrCycleDetected        the edge set contains a cycle.
//   - ErrUnknownStandpoint    an edge or query names a standpoint not in the graph.
package hierarchy
