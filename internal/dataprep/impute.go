package dataprep

import (
	"math"

	"borrow-trends/internal/models"

	"github.com/go-gota/gota/series"
)

// Impute replaces missing values in every numeric column with the median of
// that column's non-missing values. Columns with no values at all are left
// as they are. Running it on an already imputed record set changes nothing.
func Impute(rs models.RecordSet) models.RecordSet {
	out := rs
	for _, name := range rs.NumericColumns() {
		values, _ := rs.Floats(name)
		present := dropMissing(values)
		if len(present) == 0 || len(present) == len(values) {
			continue
		}
		fill := Median(present)
		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = fill
			}
		}
		out = out.WithFloats(name, values)
	}
	return out
}

// Median returns the middle value of x, or the mean of the two middle values
// when len(x) is even. NaN for an empty slice.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return series.Floats(x).Median()
}

func dropMissing(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
