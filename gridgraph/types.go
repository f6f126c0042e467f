// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/densepath.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a walkable cell with negative value in a weighted grid.
	ErrNegativeCost = errors.New("gridgraph: walkable cell has negative cost")
	// ErrCellOutOfRange indicates a route endpoint outside the grid.
	ErrCellOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrBlockedCell indicates a route endpoint that is a wall.
	ErrBlockedCell = errors.New("gridgraph: cell is a wall")
	// ErrNoPath indicates the finish cell cannot be reached from the start cell.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses a grid position; X is the column, Y the row.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid routing.
type GridOptions struct {
	// WalkableThreshold is the minimum cell value considered walkable;
	// cells below it are walls.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted makes entering a cell cost its value instead of 1.
	Weighted bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// WalkableThreshold=1 (values ≥1 are walkable), Conn=Conn4, unit step cost.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkableThreshold: 1,
		Conn:              Conn4,
	}
}

// Route is the outcome of a grid search.
//
// Visited lists cells in the order the search finalized them, starting with
// the start cell and ending with the finish cell when it was reached.
// Path runs from start to finish inclusive; it is nil when no path exists.
// Cost is the total step cost of Path.
type Route struct {
	Visited []Cell
	Path    []Cell
	Cost    int64
}
