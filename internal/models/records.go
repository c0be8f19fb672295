package models

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the loan dataset.
const (
	ColIncome      = "Income"
	ColLoanAmount  = "Loan_Amount"
	ColCreditScore = "Credit_Score"
	ColAge         = "Age"
	ColGender      = "Gender"
	ColEducation   = "Education"
	ColDefault     = "Default"
)

// RequiredColumns must be present in every loan dataset.
var RequiredColumns = []string{ColIncome, ColLoanAmount, ColCreditScore, ColAge, ColDefault}

// RecordSet is an ordered collection of loan-application rows together with the
// encoding table used to recode its categorical columns. It is a value: every
// With* method returns a new RecordSet and leaves the receiver untouched.
type RecordSet struct {
	frame    dataframe.DataFrame
	encoding EncodingTable
}

// NewRecordSet wraps a loaded data frame.
func NewRecordSet(frame dataframe.DataFrame) RecordSet {
	return RecordSet{frame: frame.Copy()}
}

// Len returns the number of rows.
func (rs RecordSet) Len() int {
	if rs.frame.Ncol() == 0 {
		return 0
	}
	return rs.frame.Nrow()
}

// Columns returns the column names in source order.
func (rs RecordSet) Columns() []string {
	return rs.frame.Names()
}

func (rs RecordSet) HasColumn(name string) bool {
	for _, n := range rs.frame.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the column holds numbers (gota Int or Float).
func (rs RecordSet) IsNumeric(name string) bool {
	if !rs.HasColumn(name) {
		return false
	}
	switch rs.frame.Col(name).Type() {
	case series.Int, series.Float:
		return true
	default:
		return false
	}
}

// NumericColumns returns the numeric column names in source order.
func (rs RecordSet) NumericColumns() []string {
	var out []string
	for _, n := range rs.frame.Names() {
		if rs.IsNumeric(n) {
			out = append(out, n)
		}
	}
	return out
}

// Floats returns a copy of a numeric column; missing cells are NaN.
func (rs RecordSet) Floats(name string) ([]float64, bool) {
	if !rs.IsNumeric(name) {
		return nil, false
	}
	return rs.frame.Col(name).Float(), true
}

// Strings returns a copy of a column as text; missing cells are "".
func (rs RecordSet) Strings(name string) ([]string, bool) {
	if !rs.HasColumn(name) {
		return nil, false
	}
	col := rs.frame.Col(name)
	values := col.Records()
	for i, missing := range col.IsNaN() {
		if missing {
			values[i] = ""
		}
	}
	return values, true
}

// WithFloats returns a copy of the record set with the named column replaced
// (or appended) by values as a Float column. NaN marks a missing cell.
func (rs RecordSet) WithFloats(name string, values []float64) RecordSet {
	cp := make([]float64, len(values))
	copy(cp, values)
	return RecordSet{
		frame:    rs.frame.Mutate(series.New(cp, series.Float, name)),
		encoding: rs.encoding,
	}
}

// WithEncoding returns a copy of the record set carrying table.
func (rs RecordSet) WithEncoding(table EncodingTable) RecordSet {
	return RecordSet{frame: rs.frame.Copy(), encoding: table}
}

func (rs RecordSet) Encoding() EncodingTable {
	return rs.encoding
}

// Frame returns a copy of the underlying data frame.
func (rs RecordSet) Frame() dataframe.DataFrame {
	return rs.frame.Copy()
}

// MissingCount returns the number of NaN cells in a numeric column.
func (rs RecordSet) MissingCount(name string) int {
	values, ok := rs.Floats(name)
	if !ok {
		return 0
	}
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
