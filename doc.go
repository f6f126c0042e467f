// Package densepath is a small, dependency-light library for single-source
// shortest paths on dense graphs.
//
// What is inside:
//
//	matrix/    — Adjacency: a validated, immutable N×N integer weight matrix,
//	             with the classic "0 = no edge" encoding or an explicit NoEdge marker
//	dijkstra/  — Dijkstra's algorithm with an O(V²) selection scan over any dense graph,
//	             predecessor tracking, early exit and visit hooks
//	gridgraph/ — a 2D grid of walkable cells and walls as a graph; Dijkstra and A* routes
//	examples/  — runnable demonstration on the 4-node reference graph
//
// Quick example:
//
//	dist, err := dijkstra.ShortestDistances([][]int64{
//	    {0, 50, 100, 0},
//	    {50, 0, 30, 200},
//	    {100, 30, 0, 20},
//	    {0, 200, 20, 0},
//	}, 0)
//	// dist == [0 50 80 100]
//
// Every validation error wraps matrix.ErrInvalidArgument, so
// errors.Is(err, dijkstra.ErrInvalidArgument) identifies a bad call.
//
//	go get github.com/katalvlaran/densepath
package densepath
