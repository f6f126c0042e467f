// SPDX-License-Identifier: MIT

// Package matrix: Adjacency, an immutable dense integer weight matrix.
//
// Contract:
//   - rows[i][j] is the weight of the edge i→j.
//   - The diagonal carries no meaning and is never reported as an edge.
//   - Absence is decided by the EdgeMode chosen at construction.
//   - The input is deep-copied; later mutation by the caller has no effect.
//
// Adjacency satisfies dijkstra.Graph (Order, Edge) without importing it.
package matrix

import "fmt"

// Adjacency is a validated N×N weight matrix.
type Adjacency struct {
	n    int
	mode EdgeMode
	data []int64 // row-major, len == n*n
}

// NewAdjacency validates rows and returns an immutable copy.
// Validation order: edge mode → non-empty → square → non-negative.
// Complexity: O(n²) time and memory.
func NewAdjacency(rows [][]int64, opts ...Option) (*Adjacency, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err = ValidateNonEmpty(rows); err != nil {
		return nil, err
	}
	if err = ValidateSquare(rows); err != nil {
		return nil, err
	}
	if err = ValidateNonNegative(rows, o.mode); err != nil {
		return nil, err
	}

	n := len(rows)
	data := make([]int64, n*n)
	for i, row := range rows {
		copy(data[i*n:(i+1)*n], row)
	}

	return &Adjacency{n: n, mode: o.mode, data: data}, nil
}

// Order returns the number of vertices N. A nil receiver has order 0.
func (a *Adjacency) Order() int {
	if a == nil {
		return 0
	}

	return a.n
}

// Mode returns the absent-edge encoding.
func (a *Adjacency) Mode() EdgeMode { return a.mode }

// Edge reports the weight of u→v and whether the edge exists.
// Out-of-range indices, the diagonal and a nil receiver report (0, false).
func (a *Adjacency) Edge(u, v int) (int64, bool) {
	if a == nil || u < 0 || u >= a.n || v < 0 || v >= a.n || u == v {
		return 0, false
	}
	w := a.data[u*a.n+v]
	switch a.mode {
	case ExplicitNoEdge:
		if w == NoEdge {
			return 0, false
		}
	default:
		if w == 0 {
			return 0, false
		}
	}

	return w, true
}

// Weight returns the raw stored entry at [u][v].
// Returns ErrOutOfRange for bad indices.
func (a *Adjacency) Weight(u, v int) (int64, error) {
	if err := ValidateIndex(u, a.n); err != nil {
		return 0, fmt.Errorf("Adjacency.Weight(%d,%d): %w", u, v, err)
	}
	if err := ValidateIndex(v, a.n); err != nil {
		return 0, fmt.Errorf("Adjacency.Weight(%d,%d): %w", u, v, err)
	}

	return a.data[u*a.n+v], nil
}

// Neighbors returns the targets of all edges leaving u, in ascending order.
func (a *Adjacency) Neighbors(u int) ([]int, error) {
	if err := ValidateIndex(u, a.n); err != nil {
		return nil, fmt.Errorf("Adjacency.Neighbors(%d): %w", u, err)
	}
	var out []int
	for v := 0; v < a.n; v++ {
		if _, ok := a.Edge(u, v); ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// IsSymmetric reports whether every off-diagonal pair agrees: [i][j] == [j][i].
// Complexity: O(n²) over the upper triangle.
func (a *Adjacency) IsSymmetric() bool {
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				return false
			}
		}
	}

	return true
}

// Rows returns a fresh [][]int64 copy of the stored entries.
func (a *Adjacency) Rows() [][]int64 {
	out := make([][]int64, a.n)
	for i := range out {
		out[i] = make([]int64, a.n)
		copy(out[i], a.data[i*a.n:(i+1)*a.n])
	}

	return out
}
