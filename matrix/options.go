// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for NewAdjacency and FromEdges.
//   - Options fields are unexported; public APIs consume ...Option.
//   - Defaults reproduce the classic dense encoding: off-diagonal 0 means
//     "no edge", edges built from lists are mirrored (undirected).
//   - Option constructors never panic; invalid values surface as errors
//     from the constructor that consumes them.
package matrix

// EdgeMode selects how an absent edge is encoded in a dense weight matrix.
type EdgeMode int

const (
	// ZeroIsNoEdge treats an off-diagonal 0 as "no edge". A genuine
	// zero-weight edge cannot be expressed in this mode.
	ZeroIsNoEdge EdgeMode = iota

	// ExplicitNoEdge treats NoEdge as "no edge" and every other
	// non-negative value, including 0, as a real edge weight.
	ExplicitNoEdge
)

// NoEdge marks an absent edge under ExplicitNoEdge.
const NoEdge int64 = -1

// Defaults (single source of truth).
const (
	// DefaultEdgeMode is the reference dense encoding.
	DefaultEdgeMode = ZeroIsNoEdge

	// DefaultDirected controls whether FromEdges mirrors each edge.
	DefaultDirected = false
)

// Options holds the resolved configuration.
type Options struct {
	mode     EdgeMode
	directed bool
}

// Option mutates Options.
type Option func(*Options)

// WithEdgeMode selects the absent-edge encoding.
func WithEdgeMode(mode EdgeMode) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

// WithDirected makes FromEdges write only [From][To]. NewAdjacency ignores it.
func WithDirected(directed bool) Option {
	return func(o *Options) {
		o.directed = directed
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := Options{mode: DefaultEdgeMode, directed: DefaultDirected}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidateEdgeMode(o.mode); err != nil {
		return Options{}, err
	}

	return o, nil
}
