// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape/index/weight checks shared by
//    NewAdjacency, FromEdges and the dijkstra entry points.
//  - Validators return tagged sentinels; errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing except the error value.
//  - ValidateNonNegative is O(n²); the others are O(1) or O(n).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNonEmpty ensures rows is non-nil and has at least one row.
// Complexity: O(1).
func ValidateNonEmpty(rows [][]int64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyGraph)
	}

	return nil
}

// ValidateSquare ensures every row has exactly len(rows) entries.
// Assumes rows is non-empty (call ValidateNonEmpty first).
// Complexity: O(n).
func ValidateSquare(rows [][]int64) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d entries, want %d", i, len(row), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateNonNegative rejects negative off-diagonal weights, except the
// NoEdge marker when mode is ExplicitNoEdge. The diagonal is ignored.
// Assumes rows is square.
// Complexity: O(n²).
func ValidateNonNegative(rows [][]int64, mode EdgeMode) error {
	for i, row := range rows {
		for j, w := range row {
			if i == j || w >= 0 {
				continue
			}
			if mode == ExplicitNoEdge && w == NoEdge {
				continue
			}

			return validatorErrorf(fmt.Sprintf("ValidateNonNegative: [%d][%d]=%d", i, j, w), ErrNegativeWeight)
		}
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: %d not in [0,%d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateEdgeMode ensures mode is one of the defined encodings.
// Complexity: O(1).
func ValidateEdgeMode(mode EdgeMode) error {
	switch mode {
	case ZeroIsNoEdge, ExplicitNoEdge:
		return nil
	default:
		return validatorErrorf(fmt.Sprintf("ValidateEdgeMode: %d", mode), ErrBadEdgeMode)
	}
}
