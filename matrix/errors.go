// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure a caller can trigger is an invalid argument, so every
// sentinel below wraps ErrInvalidArgument. Callers that only care about the
// kind match with errors.Is(err, ErrInvalidArgument); callers that care about
// the exact cause match the specific sentinel.

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of the sentinel set.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrEmptyGraph is returned when the matrix is nil or has zero rows.
	ErrEmptyGraph = fmt.Errorf("matrix: empty graph: %w", ErrInvalidArgument)

	// ErrNonSquare is returned when some row length differs from the row count.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrInvalidArgument)

	// ErrNegativeWeight is returned for a negative weight that is not the
	// NoEdge marker of the active EdgeMode.
	ErrNegativeWeight = fmt.Errorf("matrix: negative edge weight: %w", ErrInvalidArgument)

	// ErrOutOfRange indicates a vertex index outside [0, N).
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", ErrInvalidArgument)

	// ErrBadEdgeMode is returned for an EdgeMode value that is not defined.
	ErrBadEdgeMode = fmt.Errorf("matrix: unknown edge mode: %w", ErrInvalidArgument)
)
