package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSelectPivotEnteringMostNegativeFirst(t *testing.T) {
	tab := mat.NewDense(3, 5, []float64{
		1, 1, 2, 0, 4,
		2, 1, 1, 0, 6,
		-1, -3, -3, 1, 0,
	})

	p, q, choice := selectPivot(tab)
	assert.Equal(t, pivotContinue, choice)
	//-3 appears in columns 1 and 2; the first wins
	assert.Equal(t, 1, p)
	//ratios 4/1 and 6/1; row 0 wins
	assert.Equal(t, 0, q)
}

func TestSelectPivotRatioTest(t *testing.T) {
	tab := mat.NewDense(3, 4, []float64{
		1, 2, 0, 8,
		0, 4, 0, 6,
		0, -5, 0, 0,
	})

	p, q, choice := selectPivot(tab)
	assert.Equal(t, pivotContinue, choice)
	assert.Equal(t, 1, p)
	//ratios 8/2=4 and 6/4=1.5; row 1 wins
	assert.Equal(t, 1, q)
}

func TestSelectPivotSkipsNonPositiveRows(t *testing.T) {
	tab := mat.NewDense(3, 4, []float64{
		-1, 2, 0, 1,
		1, 0, 0, 3,
		-2, 0, 0, 0,
	})

	p, q, choice := selectPivot(tab)
	assert.Equal(t, pivotContinue, choice)
	assert.Equal(t, 0, p)
	//row 0 has a negative entry in the pivot column, only row 1 qualifies
	assert.Equal(t, 1, q)
}

func TestSelectPivotOptimal(t *testing.T) {
	tab := mat.NewDense(2, 4, []float64{
		1, 2, 0, 4,
		0, 1, 3, -5,
	})

	_, _, choice := selectPivot(tab)
	assert.Equal(t, pivotOptimal, choice)
}

func TestSelectPivotUnbounded(t *testing.T) {
	tab := mat.NewDense(3, 4, []float64{
		-1, 1, 0, 2,
		0, 2, 0, 3,
		-4, 0, 0, 0,
	})

	p, _, choice := selectPivot(tab)
	assert.Equal(t, pivotUnbounded, choice)
	assert.Equal(t, 0, p)
}

func TestFindBasicRow(t *testing.T) {
	tab := mat.NewDense(3, 5, []float64{
		0, 1, 2, 0.5, 4,
		1, 0, 1, 0, 6,
		0, 0, -3, 0, 0,
	})

	row, ok := FindBasicRow(tab, 0)
	require.True(t, ok)
	assert.Equal(t, 1, row)

	row, ok = FindBasicRow(tab, 1)
	require.True(t, ok)
	assert.Equal(t, 0, row)

	//two non-zero entries
	_, ok = FindBasicRow(tab, 2)
	assert.False(t, ok)

	//single non-zero entry but not 1
	_, ok = FindBasicRow(tab, 3)
	assert.False(t, ok)
}

func TestFindBasicRowZeroColumn(t *testing.T) {
	tab := mat.NewDense(2, 3, []float64{
		0, 1, 4,
		0, 0, 0,
	})

	_, ok := FindBasicRow(tab, 0)
	assert.False(t, ok)
}

func TestFindBasicRowCountsObjectiveRow(t *testing.T) {
	//unit entry in a constraint row but a leftover non-zero in the
	//objective row disqualifies the column
	tab := mat.NewDense(3, 3, []float64{
		1, 0, 4,
		0, 1, 2,
		0.5, 0, 0,
	})

	_, ok := FindBasicRow(tab, 0)
	assert.False(t, ok)

	row, ok := FindBasicRow(tab, 1)
	require.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestIterateReachesOptimum(t *testing.T) {
	//minimize -3x1 - 5x2 over x1<=4, 2x2<=12, 3x1+2x2<=18 with slacks
	//already basic; classic optimum at (2, 6) with value -36
	tab := mat.NewDense(4, 6, []float64{
		1, 0, 1, 0, 0, 4,
		0, 2, 0, 1, 0, 12,
		3, 2, 0, 0, 1, 18,
		-3, -5, 0, 0, 0, 0,
	})

	out, status, err := Iterate(tab)
	require.NoError(t, err)
	assert.Equal(t, Optimal, status)

	rows, cols := out.Dims()
	assert.InDelta(t, 36.0, out.At(rows-1, cols-1), 1e-9)

	row, ok := FindBasicRow(out, 0)
	require.True(t, ok)
	assert.InDelta(t, 2.0, out.At(row, cols-1), 1e-9)
	row, ok = FindBasicRow(out, 1)
	require.True(t, ok)
	assert.InDelta(t, 6.0, out.At(row, cols-1), 1e-9)
}

func TestIterateUnbounded(t *testing.T) {
	tab := mat.NewDense(2, 4, []float64{
		-1, 1, 0, 2,
		-2, 0, 0, 0,
	})

	_, status, err := Iterate(tab)
	require.NoError(t, err)
	assert.Equal(t, Unbounded, status)
}

func TestIterateKeepsFeasibility(t *testing.T) {
	tab := mat.NewDense(4, 6, []float64{
		1, 0, 1, 0, 0, 4,
		0, 2, 0, 1, 0, 12,
		3, 2, 0, 0, 1, 18,
		-3, -5, 0, 0, 0, 0,
	})

	for {
		p, q, choice := selectPivot(tab)
		if choice != pivotContinue {
			break
		}
		next, err := Pivot(tab, p, q)
		require.NoError(t, err)
		tab = next

		rows, cols := tab.Dims()
		for i := 0; i < rows - 1; i++ {
			assert.GreaterOrEqual(t, tab.At(i, cols-1), -1e-9)
		}
	}
}
