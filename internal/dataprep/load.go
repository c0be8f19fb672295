// Package dataprep loads the loan dataset and turns it into a cleaned record
// set: categorical recoding, median imputation and the numeric correlation
// matrix.
package dataprep

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"borrow-trends/internal/models"

	"github.com/go-gota/gota/dataframe"
)

// missingTokens are the cell values read as missing.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

const nanToken = "NaN"

// Load reads the CSV file at path into a record set.
func Load(path string) (models.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("open %s: %w: %v", path, ErrSourceNotFound, err)
	}
	defer f.Close()

	rs, err := LoadReader(f)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("load %s: %w", path, err)
	}
	return rs, nil
}

// LoadReader reads comma-separated data with a header row into a record set.
// Every required column must be present.
func LoadReader(r io.Reader) (models.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return models.RecordSet{}, fmt.Errorf("%w: %v", ErrSourceMalformed, parseErr)
		}
		return models.RecordSet{}, fmt.Errorf("%w: read: %v", ErrSourceMalformed, err)
	}
	if len(records) == 0 {
		return models.RecordSet{}, fmt.Errorf("%w: no header row", ErrSourceEmpty)
	}
	if len(records) == 1 {
		return models.RecordSet{}, fmt.Errorf("%w: no data rows", ErrSourceEmpty)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return models.RecordSet{}, fmt.Errorf("%w: column %d has no name", ErrSourceMalformed, i+1)
		}
		if seen[name] {
			return models.RecordSet{}, fmt.Errorf("%w: duplicate column %q", ErrSourceMalformed, name)
		}
		seen[name] = true
		header[i] = name
	}
	for _, required := range models.RequiredColumns {
		if !seen[required] {
			return models.RecordSet{}, fmt.Errorf("%w: missing required column %q", ErrSourceMalformed, required)
		}
	}

	for _, row := range records[1:] {
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if _, missing := missingTokens[cell]; missing {
				cell = nanToken
			}
			row[i] = cell
		}
	}

	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{nanToken}),
	)
	if frame.Err != nil {
		return models.RecordSet{}, fmt.Errorf("%w: %v", ErrSourceMalformed, frame.Err)
	}

	return models.NewRecordSet(frame), nil
}
