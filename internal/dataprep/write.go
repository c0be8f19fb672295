package dataprep

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"borrow-trends/internal/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WriteCSV writes the record set with a header row. Floats are written with
// the shortest representation that parses back to the same value and missing
// cells are left empty.
func WriteCSV(w io.Writer, rs models.RecordSet) error {
	frame, err := textFrame(rs.Frame())
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := frame.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// SaveCSV writes the record set to path, replacing any existing file.
func SaveCSV(path string, rs models.RecordSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// textFrame replaces every numeric column with its formatted String column.
// gota renders floats with six fixed decimals and missing cells as NaN
// otherwise.
func textFrame(frame dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, name := range frame.Names() {
		col := frame.Col(name)
		switch col.Type() {
		case series.Float:
			frame = frame.Mutate(formatFloats(col))
		case series.Int:
			frame = frame.Mutate(formatInts(col))
		default:
			continue
		}
		if frame.Err != nil {
			return frame, frame.Err
		}
	}
	return frame, nil
}

func formatFloats(col series.Series) series.Series {
	values := col.Float()
	cells := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return series.New(cells, series.String, col.Name)
}

func formatInts(col series.Series) series.Series {
	cells := col.Records()
	for i, missing := range col.IsNaN() {
		if missing {
			cells[i] = ""
		}
	}
	return series.New(cells, series.String, col.Name)
}
