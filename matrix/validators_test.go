// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densepath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		i, n    int
		wantErr error
	}{
		{"first", 0, 1, nil},
		{"last", 3, 4, nil},
		{"equal to n", 4, 4, matrix.ErrOutOfRange},
		{"negative", -1, 4, matrix.ErrOutOfRange},
		{"empty", 0, 0, matrix.ErrOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateIndex(tc.i, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSquareAndNonEmpty(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNonEmpty(nil), matrix.ErrEmptyGraph)
	require.NoError(t, matrix.ValidateNonEmpty([][]int64{{0}}))

	require.NoError(t, matrix.ValidateSquare([][]int64{{0}}))
	require.NoError(t, matrix.ValidateSquare([][]int64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, matrix.ValidateSquare([][]int64{{0, 1}, {1, 0, 2}}), matrix.ErrNonSquare)
}

func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	rows := [][]int64{{0, matrix.NoEdge}, {2, 0}}
	require.ErrorIs(t, matrix.ValidateNonNegative(rows, matrix.ZeroIsNoEdge), matrix.ErrNegativeWeight)
	require.NoError(t, matrix.ValidateNonNegative(rows, matrix.ExplicitNoEdge))
	require.NoError(t, matrix.ValidateNonNegative([][]int64{{-1, 0}, {0, -9}}, matrix.ZeroIsNoEdge))
}

func TestValidateEdgeMode(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateEdgeMode(matrix.ZeroIsNoEdge))
	require.NoError(t, matrix.ValidateEdgeMode(matrix.ExplicitNoEdge))
	require.ErrorIs(t, matrix.ValidateEdgeMode(matrix.EdgeMode(2)), matrix.ErrBadEdgeMode)
}
