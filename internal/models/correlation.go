package models

import (
	"gonum.org/v1/gonum/mat"
)

// CorrelationMatrix holds pairwise Pearson coefficients between the numeric
// columns of a record set.
type CorrelationMatrix struct {
	names  []string
	values *mat.SymDense
}

// NewCorrelationMatrix takes ownership of values, which must be len(names) square.
func NewCorrelationMatrix(names []string, values *mat.SymDense) CorrelationMatrix {
	cp := make([]string, len(names))
	copy(cp, names)
	return CorrelationMatrix{names: cp, values: values}
}

func (m CorrelationMatrix) Names() []string {
	cp := make([]string, len(m.names))
	copy(cp, m.names)
	return cp
}

func (m CorrelationMatrix) Len() int {
	return len(m.names)
}

// At returns the coefficient for the i-th and j-th columns.
func (m CorrelationMatrix) At(i, j int) float64 {
	return m.values.At(i, j)
}

// Value returns the coefficient for two named columns.
func (m CorrelationMatrix) Value(a, b string) (float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.values.At(i, j), true
}

func (m CorrelationMatrix) index(name string) int {
	for i, n := range m.names {
		if n == name {
			return i
		}
	}
	return -1
}
