// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// for dense graphs with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestDistances takes a raw N×N matrix (off-diagonal 0 = no edge) and a
//     source index and returns one distance per vertex, Infinity if unreachable.
//   - Dijkstra runs the same algorithm over any Graph (Order + Edge), e.g. a
//     *matrix.Adjacency built with the ExplicitNoEdge encoding or a grid adapter,
//     and accepts functional options.
//   - Each round selects the unvisited vertex with the smallest distance
//     (lowest index on ties), marks it final and relaxes its outgoing edges.
//
// Key features:
//
//   - WithReturnPath: returns a predecessor slice; PathTo rebuilds any route.
//   - WithTarget: stops once a chosen vertex is final.
//   - WithStopAtUnreachable: ends the run when nothing else is reachable.
//   - WithMaxDistance / WithInfEdgeThreshold: distance caps and impassable edges.
//   - WithOnVisit: observe vertices in the order they are finalized.
//
// Performance and complexity:
//
//   - Time:  O(V²), one linear selection scan and one row scan per round.
//   - Space: O(V) for distances, visited flags and (optional) predecessors.
//
// Error handling:
//
// All validation errors wrap ErrInvalidArgument and are returned before any
// state is allocated; there are no partial results. PathTo additionally
// returns ErrNoPath for an unreached target.
//
// Encoding caveat:
//
// With the default matrix encoding an off-diagonal 0 means "no edge", so a
// genuine zero-weight edge cannot be expressed in a raw matrix passed to
// ShortestDistances. Build a matrix.Adjacency with
// matrix.WithEdgeMode(matrix.ExplicitNoEdge) and call Dijkstra instead.
//
// Thread safety:
//
//   - Every call owns its state; nothing is shared between calls.
//   - Concurrent calls over the same Graph are safe as long as the Graph is not
//     mutated meanwhile (*matrix.Adjacency never is).
//
// API reference:
//
//	func ShortestDistances(graph [][]int64, source int) ([]int64, error)
//	func Dijkstra(g Graph, source int, opts ...Option) (dist []int64, prev []int, err error)
//	func PathTo(prev []int, source, target int) ([]int, error)
package dijkstra
