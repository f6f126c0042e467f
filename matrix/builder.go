// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Edge is one weighted edge for FromEdges.
type Edge struct {
	From, To int
	Weight   int64
}

// FromEdges builds an n×n Adjacency from an edge list.
// Unset cells hold the absent-edge marker of the chosen EdgeMode.
// Unless WithDirected(true) is given, every edge is mirrored.
// Later edges overwrite earlier ones on the same cell. Self-loops are
// stored but, like every diagonal entry, never reported by Edge.
//
// Errors: ErrEmptyGraph for n ≤ 0, ErrOutOfRange for a bad endpoint,
// ErrNegativeWeight for a negative weight, ErrBadEdgeMode.
// Complexity: O(n² + len(edges)).
func FromEdges(n int, edges []Edge, opts ...Option) (*Adjacency, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, validatorErrorf(fmt.Sprintf("FromEdges: n=%d", n), ErrEmptyGraph)
	}

	absent := int64(0)
	if o.mode == ExplicitNoEdge {
		absent = NoEdge
	}
	data := make([]int64, n*n)
	for i := range data {
		if i/n != i%n {
			data[i] = absent
		}
	}

	for k, e := range edges {
		if err = ValidateIndex(e.From, n); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d: %w", k, err)
		}
		if err = ValidateIndex(e.To, n); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d: %w", k, err)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("FromEdges: edge %d (%d→%d) weight=%d: %w", k, e.From, e.To, e.Weight, ErrNegativeWeight)
		}
		data[e.From*n+e.To] = e.Weight
		if !o.directed {
			data[e.To*n+e.From] = e.Weight
		}
	}

	return &Adjacency{n: n, mode: o.mode, data: data}, nil
}
