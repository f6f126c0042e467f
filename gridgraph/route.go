package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/densepath/dijkstra"
)

// ShortestRoute finds a minimum-cost route from start to finish with
// Dijkstra's algorithm. The search stops as soon as finish is finalized,
// or when no unvisited cell is reachable any more.
//
// Errors: ErrCellOutOfRange / ErrBlockedCell for a bad endpoint; ErrNoPath,
// together with the Visited order explored so far, when finish is unreachable.
// Complexity: O((W×H)²) time, O(W×H) memory.
func (gg *GridGraph) ShortestRoute(start, finish Cell) (Route, error) {
	if err := gg.checkEndpoint("start", start); err != nil {
		return Route{}, err
	}
	if err := gg.checkEndpoint("finish", finish); err != nil {
		return Route{}, err
	}

	var route Route
	src, dst := gg.Index(start), gg.Index(finish)
	dist, prev, err := dijkstra.Dijkstra(gg, src,
		dijkstra.WithTarget(dst),
		dijkstra.WithStopAtUnreachable(),
		dijkstra.WithReturnPath(),
		dijkstra.WithOnVisit(func(u int, _ int64) {
			route.Visited = append(route.Visited, gg.CellAt(u))
		}),
	)
	if err != nil {
		return Route{}, fmt.Errorf("gridgraph: %w", err)
	}
	if dist[dst] == dijkstra.Infinity {
		return route, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNoPath, start.X, start.Y, finish.X, finish.Y)
	}

	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		return route, fmt.Errorf("gridgraph: %w", err)
	}
	route.Path = make([]Cell, len(path))
	for i, v := range path {
		route.Path[i] = gg.CellAt(v)
	}
	route.Cost = dist[dst]

	return route, nil
}
