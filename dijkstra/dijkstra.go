// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over dense, index-addressed graphs.
//
// The selection step is a linear scan over unvisited vertices, so a run
// costs O(V²) regardless of edge count. This matches dense adjacency
// matrices, where enumerating the neighbors of a vertex is already O(V).
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(V²)) to detect negative weights and fail fast.
//   - Ties in the selection scan resolve to the lowest vertex index.
//   - A full run makes exactly V-1 selections. When the closest unvisited vertex
//     is at Infinity, the selection still marks it visited and relaxes nothing.
//   - Relaxation saturates: a candidate distance that would overflow int64 is dropped.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/densepath/matrix"
)

// ShortestDistances computes the minimum distance from source to every
// vertex of graph, an N×N matrix where graph[i][j] is the weight of i→j and
// an off-diagonal 0 means "no edge". Unreachable vertices hold Infinity.
//
// Errors (all match ErrInvalidArgument): the matrix errors of
// matrix.NewAdjacency for an empty, non-square or negative matrix, and
// ErrSourceOutOfRange. Nothing is computed when an error is returned.
//
// Complexity: O(N²) time and memory.
func ShortestDistances(graph [][]int64, source int) ([]int64, error) {
	a, err := matrix.NewAdjacency(graph)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	dist, _, err := Dijkstra(a, source)

	return dist, err
}

// Dijkstra computes shortest distances from source to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v (Infinity if unreachable).
//   - prev: optional predecessor slice if WithReturnPath is given (nil otherwise).
//     prev[v] == u means the shortest path to v ends with the edge u→v.
//     prev[source] and prev of unreachable vertices are NoPredecessor.
//   - err:  error if inputs are invalid; dist and prev are nil then.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. source must be in [0, N) (ErrSourceOutOfRange).
//  4. WithTarget, if given, must be in [0, N) (ErrTargetOutOfRange).
//  5. MaxDistance ≥ 0 (ErrBadMaxDistance), InfEdgeThreshold > 0 (ErrBadInfThreshold).
//  6. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V)
func Dijkstra(g Graph, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and indices
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Order()
	if n < 1 {
		return nil, nil, ErrEmptyGraph
	}
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d, N=%d", ErrSourceOutOfRange, source, n)
	}
	if cfg.hasTarget && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, nil, fmt.Errorf("%w: target=%d, N=%d", ErrTargetOutOfRange, cfg.Target, n)
	}

	// 3) Validate thresholds
	if cfg.MaxDistance < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadMaxDistance, cfg.MaxDistance)
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadInfThreshold, cfg.InfEdgeThreshold)
	}

	// 4) Pre-scan all edges to detect negative weights.
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if w, ok := g.Edge(u, v); ok && w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 5) Run
	r := &runner{
		g:       g,
		n:       n,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Nothing in it outlives the call that created it.
type runner struct {
	g       Graph   // The input graph; read-only within Dijkstra.
	n       int     // g.Order(), read once.
	options Options // Resolved configuration.
	dist    []int64 // dist[v] = current best distance from source.
	prev    []int   // prev[v] = predecessor on the best path, nil unless ReturnPath.
	visited []bool  // visited[v] = distance of v is final.
}

// init sets every distance to Infinity, every predecessor to NoPredecessor
// and the source distance to zero.
func (r *runner) init(source int) {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Infinity
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[source] = 0
}

// process runs the selection rounds.
//
// A full run makes N-1 rounds: once N-1 vertices are final the last one is too.
// When a Target or an OnVisit hook is set, one more round is made so every
// reachable vertex is reported; that round can no longer change any distance
// because every other vertex is already visited.
func (r *runner) process() {
	rounds := r.n - 1
	if r.options.hasTarget || r.options.OnVisit != nil {
		rounds = r.n
	}

	for round := 0; round < rounds; round++ {
		u := r.selectMin()
		d := r.dist[u]

		if d == Infinity && r.options.StopAtUnreachable {
			return
		}

		r.visited[u] = true
		if d != Infinity && r.options.OnVisit != nil {
			r.options.OnVisit(u, d)
		}
		if r.options.hasTarget && u == r.options.Target {
			return
		}
		if d == Infinity {
			// Nothing left is reachable; the round is a no-op.
			continue
		}

		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the smallest distance, the
// lowest index on ties. Only called while at least one vertex is unvisited.
func (r *runner) selectMin() int {
	u := -1
	for i := 0; i < r.n; i++ {
		if !r.visited[i] && (u == -1 || r.dist[i] < r.dist[u]) {
			u = i
		}
	}

	return u
}

// relax tries every unvisited v reachable by an edge u→v.
// Assumes r.dist[u] is final and finite.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for v := 0; v < r.n; v++ {
		if r.visited[v] {
			continue
		}
		w, ok := r.g.Edge(u, v)
		if !ok {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > Infinity-du {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
	}
}
