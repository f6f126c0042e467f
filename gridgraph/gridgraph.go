// Package gridgraph treats a 2D grid of integer cell values as a graph
// and finds routes between two cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Walls: cells with value < WalkableThreshold are never entered
//   - Unit step cost, or the entered cell's value as cost (Weighted)
//   - Dijkstra routes (ShortestRoute) and A* routes (AStarRoute), both
//     reporting the order in which cells were finalized
//
// A GridGraph satisfies dijkstra.Graph with vertex index y*Width+x, so it can
// be handed to dijkstra.Dijkstra directly; no matrix is materialized.
package gridgraph

import "fmt"

// GridGraph is an immutable grid. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	WalkableThreshold int
	Weighted          bool
	neighborOffsets   [][2]int
	minStep           int64 // lower bound of any step cost, used by AStarRoute
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost for a
// weighted grid with a walkable negative cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minStep := int64(1)
	first := true
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		if !opts.Weighted {
			continue
		}
		for x, v := range values[y] {
			if v < opts.WalkableThreshold {
				continue
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
			if first || int64(v) < minStep {
				minStep = int64(v)
				first = false
			}
		}
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		WalkableThreshold: opts.WalkableThreshold,
		Weighted:          opts.Weighted,
		neighborOffsets:   offsets,
		minStep:           minStep,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsWalkable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) IsWalkable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.WalkableThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps c to its vertex index y*Width+x. c must be in bounds.
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// CellAt maps a vertex index back to its cell.
func (gg *GridGraph) CellAt(i int) Cell {
	return Cell{X: i % gg.Width, Y: i / gg.Width}
}

// Order returns Width×Height, the number of vertices.
func (gg *GridGraph) Order() int {
	return gg.Width * gg.Height
}

// Edge reports the cost of stepping from vertex u to vertex v: both must be
// walkable and adjacent under gg.Conn. The cost is 1, or v's value when
// the grid is Weighted.
// Complexity: O(1).
func (gg *GridGraph) Edge(u, v int) (int64, bool) {
	n := gg.Order()
	if u < 0 || u >= n || v < 0 || v >= n || u == v {
		return 0, false
	}
	from, to := gg.CellAt(u), gg.CellAt(v)
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if dx > 1 || dy > 1 {
		return 0, false
	}
	if gg.Conn != Conn8 && dx+dy != 1 {
		return 0, false
	}
	if !gg.IsWalkable(from) || !gg.IsWalkable(to) {
		return 0, false
	}

	return gg.stepCost(to), true
}

// stepCost is the cost of entering c.
func (gg *GridGraph) stepCost(c Cell) int64 {
	if gg.Weighted {
		return int64(gg.CellValues[c.Y][c.X])
	}

	return 1
}

// checkEndpoint validates a route endpoint.
func (gg *GridGraph) checkEndpoint(name string, c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %s (%d,%d) in %dx%d grid", ErrCellOutOfRange, name, c.X, c.Y, gg.Width, gg.Height)
	}
	if !gg.IsWalkable(c) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrBlockedCell, name, c.X, c.Y)
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
