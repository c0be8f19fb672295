package dataprep

import (
	"fmt"
	"math"
	"sort"

	"borrow-trends/internal/models"
)

// Fixed encodings. The code of a label is its index.
var (
	DefaultEncoding = models.Encoding{Column: models.ColDefault, Labels: []string{"No", "Yes"}}
	GenderEncoding  = models.Encoding{Column: models.ColGender, Labels: []string{"Male", "Female"}}
)

type RecodeOptions struct {
	// Strict turns unrecognized category values into ErrUnrecognizedCategory
	// instead of missing values.
	Strict bool
}

// RecodeReport counts, per column, the values that had no code and were
// recorded as missing.
type RecodeReport struct {
	Unrecognized map[string]map[string]int
}

// Total returns the number of cells that became missing during recoding.
func (r RecodeReport) Total() int {
	n := 0
	for _, values := range r.Unrecognized {
		for _, c := range values {
			n += c
		}
	}
	return n
}

// Values returns the unrecognized values of column, sorted.
func (r RecodeReport) Values(column string) []string {
	var out []string
	for v := range r.Unrecognized[column] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (r *RecodeReport) add(column, value string) {
	if r.Unrecognized == nil {
		r.Unrecognized = make(map[string]map[string]int)
	}
	if r.Unrecognized[column] == nil {
		r.Unrecognized[column] = make(map[string]int)
	}
	r.Unrecognized[column][value]++
}

// Recode replaces Default, Gender (if present) and Education (if present) with
// integer codes and attaches the encoding table to the returned record set.
// Education codes follow the order of first appearance. Missing cells stay
// missing.
func Recode(rs models.RecordSet, opts RecodeOptions) (models.RecordSet, RecodeReport, error) {
	var report RecodeReport
	table := rs.Encoding()

	out, err := recodeFixed(rs, DefaultEncoding, opts, &report)
	if err != nil {
		return models.RecordSet{}, report, err
	}
	table = table.With(DefaultEncoding)

	if rs.HasColumn(models.ColGender) {
		out, err = recodeFixed(out, GenderEncoding, opts, &report)
		if err != nil {
			return models.RecordSet{}, report, err
		}
		table = table.With(GenderEncoding)
	}

	if rs.HasColumn(models.ColEducation) {
		var enc models.Encoding
		out, enc = recodeByAppearance(out, models.ColEducation)
		table = table.With(enc)
	}

	return out.WithEncoding(table), report, nil
}

func recodeFixed(rs models.RecordSet, enc models.Encoding, opts RecodeOptions, report *RecodeReport) (models.RecordSet, error) {
	values, ok := rs.Strings(enc.Column)
	if !ok {
		return rs, nil
	}

	codes := make([]float64, len(values))
	for i, v := range values {
		if v == "" {
			codes[i] = math.NaN()
			continue
		}
		code, known := enc.Code(v)
		if !known {
			if opts.Strict {
				return models.RecordSet{}, fmt.Errorf("%w: column %s row %d value %q", ErrUnrecognizedCategory, enc.Column, i+1, v)
			}
			report.add(enc.Column, v)
			codes[i] = math.NaN()
			continue
		}
		codes[i] = float64(code)
	}
	return rs.WithFloats(enc.Column, codes), nil
}

func recodeByAppearance(rs models.RecordSet, column string) (models.RecordSet, models.Encoding) {
	enc := models.Encoding{Column: column}
	values, _ := rs.Strings(column)

	index := make(map[string]int)
	codes := make([]float64, len(values))
	for i, v := range values {
		if v == "" {
			codes[i] = math.NaN()
			continue
		}
		code, seen := index[v]
		if !seen {
			code = len(enc.Labels)
			index[v] = code
			enc.Labels = append(enc.Labels, v)
		}
		codes[i] = float64(code)
	}
	return rs.WithFloats(column, codes), enc
}
