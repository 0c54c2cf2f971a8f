// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 0},
		{3, 3},
		{2, 5},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			assert.Equal(t, tc.rows, r)
			assert.Equal(t, tc.cols, c)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_NegativeDims(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows(t *testing.T) {
	m := MustDenseRows(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))
	requireRowsEqual(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 2.5))
	assert.Equal(t, 2.5, MustAt(t, m, 0, 1))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustDenseRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, c, 0, 0))

	rows := m.ToRows()
	rows[1][1] = 42
	assert.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestDense_String(t *testing.T) {
	m := MustDenseRows(t, [][]float64{{0, 0.5}, {0.5, 0}})
	assert.Equal(t, "[0, 0.5]\n[0.5, 0]\n", m.String())

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}
