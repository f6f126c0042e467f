package gridgraph

import "fmt"

// AStarRoute finds a minimum-cost route from start to finish with A*.
//
// The heuristic is the Manhattan distance (Conn4) or the Chebyshev distance
// (Conn8) times the smallest step cost in the grid, so it never overestimates
// and the returned Cost equals ShortestRoute's. The open set is scanned
// linearly; ties on f = g + h prefer the smaller h, then the lower index.
//
// Errors are the same as ShortestRoute's.
// Complexity: O((W×H)²) time worst case, O(W×H) memory.
func (gg *GridGraph) AStarRoute(start, finish Cell) (Route, error) {
	if err := gg.checkEndpoint("start", start); err != nil {
		return Route{}, err
	}
	if err := gg.checkEndpoint("finish", finish); err != nil {
		return Route{}, err
	}

	n := gg.Order()
	g := make([]int64, n)
	prev := make([]int, n)
	open := make([]bool, n)
	closed := make([]bool, n)
	for i := range g {
		g[i] = -1 // unseen
		prev[i] = -1
	}

	src, dst := gg.Index(start), gg.Index(finish)
	g[src] = 0
	open[src] = true

	var route Route
	for {
		u := gg.pickOpen(g, open, finish)
		if u == -1 {
			return route, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNoPath, start.X, start.Y, finish.X, finish.Y)
		}
		open[u] = false
		closed[u] = true
		cu := gg.CellAt(u)
		route.Visited = append(route.Visited, cu)
		if u == dst {
			break
		}

		for _, off := range gg.neighborOffsets {
			nc := Cell{X: cu.X + off[0], Y: cu.Y + off[1]}
			if !gg.IsWalkable(nc) {
				continue
			}
			v := gg.Index(nc)
			if closed[v] {
				continue
			}
			tentative := g[u] + gg.stepCost(nc)
			if g[v] == -1 || tentative < g[v] {
				g[v] = tentative
				prev[v] = u
				open[v] = true
			}
		}
	}

	var path []Cell
	for v := dst; v != -1; v = prev[v] {
		path = append(path, gg.CellAt(v))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	route.Path = path
	route.Cost = g[dst]

	return route, nil
}

// pickOpen returns the open vertex with the lowest f, then lowest h, then
// lowest index; -1 when the open set is empty.
func (gg *GridGraph) pickOpen(g []int64, open []bool, finish Cell) int {
	best := -1
	var bestF, bestH int64
	for i, ok := range open {
		if !ok {
			continue
		}
		h := gg.heuristic(gg.CellAt(i), finish)
		f := g[i] + h
		if best == -1 || f < bestF || (f == bestF && h < bestH) {
			best, bestF, bestH = i, f, h
		}
	}

	return best
}

// heuristic estimates the remaining cost from c to finish.
func (gg *GridGraph) heuristic(c, finish Cell) int64 {
	dx, dy := abs(c.X-finish.X), abs(c.Y-finish.Y)
	steps := dx + dy
	if gg.Conn == Conn8 {
		steps = max(dx, dy)
	}

	return int64(steps) * gg.minStep
}
