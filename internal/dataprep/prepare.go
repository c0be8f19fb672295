package dataprep

import (
	"fmt"
	"time"

	"borrow-trends/internal/logger"
	"borrow-trends/internal/models"
)

// Result is the output of the preparation pipeline.
type Result struct {
	Records     models.RecordSet
	Correlation models.CorrelationMatrix
	Report      RecodeReport
}

// Pipeline runs load → recode → impute → correlation once per session.
type Pipeline struct {
	logger  logger.Logger
	options RecodeOptions
}

func NewPipeline(log logger.Logger, opts RecodeOptions) *Pipeline {
	return &Pipeline{logger: log, options: opts}
}

// Prepare loads the CSV at path and returns the cleaned record set. Any error
// is fatal for the session.
func (p *Pipeline) Prepare(path string) (Result, error) {
	start := time.Now()

	raw, err := Load(path)
	if err != nil {
		p.logger.Error("DataPrep", err, map[string]interface{}{"path": path})
		return Result{}, err
	}
	p.logger.Info("DataPrep", "record set loaded", map[string]interface{}{
		"path":    path,
		"rows":    raw.Len(),
		"columns": raw.Columns(),
	})

	result, err := p.Clean(raw)
	if err != nil {
		p.logger.Error("DataPrep", err, map[string]interface{}{"path": path})
		return Result{}, err
	}

	p.logger.Debug("DataPrep", "preparation complete", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return result, nil
}

// Clean runs the recode, impute and correlation stages on an already loaded
// record set.
func (p *Pipeline) Clean(raw models.RecordSet) (Result, error) {
	coded, report, err := Recode(raw, p.options)
	if err != nil {
		return Result{}, fmt.Errorf("recode: %w", err)
	}
	for _, column := range coded.Encoding().Columns() {
		if values := report.Values(column); len(values) > 0 {
			p.logger.Warning("DataPrep", "unrecognized category values recorded as missing", map[string]interface{}{
				"column": column,
				"values": values,
				"cells":  countCells(report, column),
			})
		}
	}

	missing := make(map[string]int)
	for _, name := range coded.NumericColumns() {
		if n := coded.MissingCount(name); n > 0 {
			missing[name] = n
		}
	}

	cleaned := Impute(coded)
	if len(missing) > 0 {
		p.logger.Info("DataPrep", "missing values imputed with column medians", map[string]interface{}{
			"imputed": missing,
		})
	}

	corr := CorrelationMatrix(cleaned)
	p.logger.Debug("DataPrep", "correlation matrix computed", map[string]interface{}{
		"columns": corr.Names(),
	})

	return Result{Records: cleaned, Correlation: corr, Report: report}, nil
}

func countCells(report RecodeReport, column string) int {
	n := 0
	for _, c := range report.Unrecognized[column] {
		n += c
	}
	return n
}
