package dataprep

import (
	"math"

	"borrow-trends/internal/models"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix computes Pearson correlation between every pair of numeric
// columns. The diagonal is always 1; pairs involving a constant column are NaN.
// Rounding can push a perfect correlation just past ±1, so values are clamped.
func CorrelationMatrix(rs models.RecordSet) models.CorrelationMatrix {
	names := rs.NumericColumns()
	rows := rs.Len()
	if len(names) == 0 || rows == 0 {
		return models.NewCorrelationMatrix(nil, nil)
	}

	data := mat.NewDense(rows, len(names), nil)
	for j, name := range names {
		values, _ := rs.Floats(name)
		data.SetCol(j, values)
	}

	corr := mat.NewSymDense(len(names), nil)
	stat.CorrelationMatrix(corr, data, nil)
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			corr.SetSym(i, j, clampUnit(corr.At(i, j)))
		}
		corr.SetSym(i, i, 1)
	}

	return models.NewCorrelationMatrix(names, corr)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
