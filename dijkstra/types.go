// Package dijkstra defines core types and configuration options
// for the dense O(V²) Dijkstra solver.
//
// Options:
//
//	– ReturnPath:          return the predecessor slice for path reconstruction.
//	– Target:              stop as soon as this vertex is finalized.
//	– StopAtUnreachable:   end the run when the closest unvisited vertex is at Infinity.
//	– MaxDistance:         vertices farther than this are never finalized.
//	– InfEdgeThreshold:    edges with weight >= this threshold are treated as impassable.
//	– OnVisit:             hook invoked for every vertex finalized at a finite distance.
//
// Errors (sentinel, all wrap ErrInvalidArgument):
//
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrEmptyGraph       if the graph has no vertices.
//	– ErrSourceOutOfRange if source is not in [0, N).
//	– ErrTargetOutOfRange if WithTarget names a vertex not in [0, N).
//	– ErrNegativeWeight   if a negative edge weight is detected.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/densepath/matrix"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in prev.
const NoPredecessor = -1

// ErrInvalidArgument is the single error kind of this package. It is the
// same value as matrix.ErrInvalidArgument.
var ErrInvalidArgument = matrix.ErrInvalidArgument

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", ErrInvalidArgument)

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = fmt.Errorf("dijkstra: graph has no vertices: %w", ErrInvalidArgument)

	// ErrSourceOutOfRange indicates that the source index is not a vertex.
	ErrSourceOutOfRange = fmt.Errorf("dijkstra: source vertex out of range: %w", ErrInvalidArgument)

	// ErrTargetOutOfRange indicates that the WithTarget index is not a vertex.
	ErrTargetOutOfRange = fmt.Errorf("dijkstra: target vertex out of range: %w", ErrInvalidArgument)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", ErrInvalidArgument)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", ErrInvalidArgument)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = fmt.Errorf("dijkstra: InfEdgeThreshold must be positive: %w", ErrInvalidArgument)
)

// ErrNoPath is returned by PathTo when the target was not reached.
// It reports an outcome, not a bad argument, so it does not wrap ErrInvalidArgument.
var ErrNoPath = errors.New("dijkstra: target is unreachable from source")

// Graph is a dense, index-addressed weighted graph with vertices 0..Order()-1.
// Edge reports the weight of u→v and whether that edge exists; it must be
// safe to call for any u, v in range. *matrix.Adjacency satisfies Graph.
type Graph interface {
	Order() int
	Edge(u, v int) (int64, bool)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Target           – vertex set by WithTarget; -1 (full run) when unset.
// MaxDistance      – vertices whose distance exceeds this are never finalized.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	ReturnPath        bool                 // Whether to return the predecessor slice
	Target            int                  // Early-exit vertex, -1 when unset
	StopAtUnreachable bool                 // End the run on the first infinite minimum
	MaxDistance       int64                // Maximum distance to explore
	InfEdgeThreshold  int64                // Weight threshold above which edges are non-traversable
	OnVisit           func(u int, d int64) // Called once per vertex finalized at finite d

	hasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, prev is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTarget stops the run right after target is finalized. Distances of
// vertices not yet finalized at that point are upper bounds, not final.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
		o.hasTarget = true
	}
}

// WithStopAtUnreachable ends the run when every remaining vertex is at
// Infinity, instead of spending the remaining rounds on no-op selections.
// Final distances are unaffected.
func WithStopAtUnreachable() Option {
	return func(o *Options) {
		o.StopAtUnreachable = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value stay at Infinity.
// Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// skipped entirely. Zero or negative values cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnVisit registers fn to be called, in finalize order, for every vertex
// whose distance becomes final and finite, including the source.
func WithOnVisit(fn func(u int, d int64)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - ReturnPath:        false (prev is nil).
//   - Target:            -1 (full run).
//   - StopAtUnreachable: false (always N-1 rounds).
//   - MaxDistance:       Infinity (no distance limit).
//   - InfEdgeThreshold:  Infinity (no edges treated as impassable).
//   - OnVisit:           nil.
func DefaultOptions() Options {
	return Options{
		Target:           -1,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
