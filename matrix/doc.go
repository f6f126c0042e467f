// SPDX-License-Identifier: MIT

// Package matrix provides Adjacency, a validated, immutable dense integer
// weight matrix used as the input graph of the dijkstra package.
//
// Encodings:
//
//   - ZeroIsNoEdge (default): an off-diagonal 0 means "no edge". This is the
//     classic textbook encoding; it cannot express a zero-weight edge.
//   - ExplicitNoEdge: NoEdge (-1) means "no edge"; 0 is a real edge of
//     weight zero.
//
// The diagonal is ignored in both encodings.
//
// Construction:
//
//	a, err := matrix.NewAdjacency([][]int64{
//	    {0, 50, 100, 0},
//	    {50, 0, 30, 200},
//	    {100, 30, 0, 20},
//	    {0, 200, 20, 0},
//	})
//
//	b, err := matrix.FromEdges(4, []matrix.Edge{{0, 1, 50}, {1, 2, 30}},
//	    matrix.WithDirected(true))
//
// Errors:
//
// Every sentinel (ErrEmptyGraph, ErrNonSquare, ErrNegativeWeight,
// ErrOutOfRange, ErrBadEdgeMode) wraps ErrInvalidArgument, so
// errors.Is(err, matrix.ErrInvalidArgument) matches any of them.
//
// Thread safety:
//
// An Adjacency is never mutated after construction and may be shared
// freely between goroutines.
package matrix
