package models

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sampleFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"Income", "Gender", "Default"},
		{"50000", "Male", "Yes"},
		{"NaN", "NaN", "No"},
	}, dataframe.DetectTypes(true))
}

func TestRecordSetColumns(t *testing.T) {
	rs := NewRecordSet(sampleFrame())

	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, []string{"Income", "Gender", "Default"}, rs.Columns())
	assert.True(t, rs.HasColumn("Gender"))
	assert.False(t, rs.HasColumn("Age"))
	assert.Equal(t, []string{"Income"}, rs.NumericColumns())

	income, ok := rs.Floats("Income")
	require.True(t, ok)
	assert.Equal(t, 50000.0, income[0])
	assert.True(t, math.IsNaN(income[1]))
	assert.Equal(t, 1, rs.MissingCount("Income"))

	gender, ok := rs.Strings("Gender")
	require.True(t, ok)
	assert.Equal(t, []string{"Male", ""}, gender)

	_, ok = rs.Floats("Gender")
	assert.False(t, ok)
}

func TestRecordSetWithFloatsDoesNotMutateReceiver(t *testing.T) {
	rs := NewRecordSet(sampleFrame())
	values := []float64{1, 0}

	coded := rs.WithFloats("Default", values)
	values[0] = 42

	assert.False(t, rs.IsNumeric("Default"))
	got, ok := coded.Floats("Default")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0}, got)
}

func TestEncodingTable(t *testing.T) {
	table := EncodingTable{}.
		With(Encoding{Column: "Default", Labels: []string{"No", "Yes"}}).
		With(Encoding{Column: "Gender", Labels: []string{"Male", "Female"}})

	assert.Equal(t, []string{"Default", "Gender"}, table.Columns())

	code, ok := table.Code("Default", "Yes")
	require.True(t, ok)
	assert.Equal(t, 1, code)

	label, ok := table.Label("Gender", 1)
	require.True(t, ok)
	assert.Equal(t, "Female", label)

	_, ok = table.Code("Gender", "Other")
	assert.False(t, ok)
	_, ok = table.Label("Gender", 5)
	assert.False(t, ok)

	replaced := table.With(Encoding{Column: "Default", Labels: []string{"N", "Y"}})
	assert.Equal(t, []string{"Gender", "Default"}, replaced.Columns())
	code, _ = table.Code("Default", "Yes")
	assert.Equal(t, 1, code, "original table is unchanged")
}

func TestCorrelationMatrixLookup(t *testing.T) {
	sym := mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1})
	m := NewCorrelationMatrix([]string{"Income", "Age"}, sym)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Value("Age", "Income")
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
	_, ok = m.Value("Age", "Gender")
	assert.False(t, ok)
}
