package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"

	"borrow-trends/internal/logger"
	"borrow-trends/internal/models"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramBins is the bucket count of every histogram chart.
const HistogramBins = 30

var (
	sizeWide   = [2]vg.Length{8 * vg.Inch, 5 * vg.Inch}
	sizeSmall  = [2]vg.Length{6 * vg.Inch, 4 * vg.Inch}
	sizeSquare = [2]vg.Length{8 * vg.Inch, 6 * vg.Inch}
)

type chartBuilder struct {
	title string
	needs []string
	build func(rs models.RecordSet, corr models.CorrelationMatrix) (Artifact, error)
}

var builders = []chartBuilder{
	{TitleIncomeVsLoan, []string{models.ColIncome, models.ColLoanAmount, models.ColDefault}, buildIncomeVsLoan},
	{TitleCreditScore, []string{models.ColCreditScore}, buildCreditScore},
	{TitleLoanVsDefault, []string{models.ColDefault, models.ColLoanAmount}, buildLoanVsDefault},
	{TitleAgeByDefault, []string{models.ColAge, models.ColDefault}, buildAgeByDefault},
	{TitleDefaultByGender, []string{models.ColGender, models.ColDefault}, buildDefaultByGender},
	{TitleCorrelationHeatmap, nil, buildCorrelationHeatmap},
}

// Generator builds the chart sequence for a prepared record set.
type Generator struct {
	logger logger.Logger
}

func NewGenerator(log logger.Logger) *Generator {
	return &Generator{logger: log}
}

// Generate returns the charts in canonical order. A chart whose numeric input
// columns are absent, or that has nothing to draw, is left out; the rest are
// still produced. The record set is only read.
func (g *Generator) Generate(rs models.RecordSet, corr models.CorrelationMatrix) []Artifact {
	out := make([]Artifact, 0, len(builders))
	for _, b := range builders {
		if missing := missingInputs(rs, b.needs); len(missing) > 0 {
			g.logger.Debug("ChartGenerator", "chart skipped, input columns absent", map[string]interface{}{
				"chart":   b.title,
				"missing": missing,
			})
			continue
		}

		a, err := b.build(rs, corr)
		if err != nil {
			g.logger.Warning("ChartGenerator", "chart skipped", map[string]interface{}{
				"chart": b.title,
				"error": err.Error(),
			})
			continue
		}
		a.index = len(out)
		out = append(out, a)
	}

	g.logger.Info("ChartGenerator", "charts generated", map[string]interface{}{
		"count": len(out),
	})
	return out
}

func missingInputs(rs models.RecordSet, needs []string) []string {
	var missing []string
	for _, n := range needs {
		if !rs.IsNumeric(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

func newArtifact(title string, size [2]vg.Length) Artifact {
	return Artifact{title: title, width: size[0], height: size[1]}
}

func buildIncomeVsLoan(rs models.RecordSet, _ models.CorrelationMatrix) (Artifact, error) {
	income, _ := rs.Floats(models.ColIncome)
	loan, _ := rs.Floats(models.ColLoanAmount)
	def, _ := rs.Floats(models.ColDefault)

	a := newArtifact(TitleIncomeVsLoan, sizeWide)
	a.xLabel, a.yLabel = models.ColIncome, models.ColLoanAmount

	var xs, ys []float64
	for i, key := range distinct(def) {
		var pts plotter.XYs
		for row := range def {
			if def[row] != key || !finite(income[row]) || !finite(loan[row]) {
				continue
			}
			pts = append(pts, plotter.XY{X: income[row], Y: loan[row]})
			xs = append(xs, income[row])
			ys = append(ys, loan[row])
		}
		if len(pts) == 0 {
			continue
		}
		label := codeLabel(rs, models.ColDefault, key)
		a.layers = append(a.layers, scatterLayer{label: label, xys: pts, color: withAlpha(seriesColor(i), 153)})
		a.legend = append(a.legend, label)
	}
	if len(xs) == 0 {
		return Artifact{}, fmt.Errorf("no complete %s/%s pairs", models.ColIncome, models.ColLoanAmount)
	}
	a.xRange = paddedRange(xs)
	a.yRange = paddedRange(ys)
	return a, nil
}

func buildCreditScore(rs models.RecordSet, _ models.CorrelationMatrix) (Artifact, error) {
	values, _ := rs.Floats(models.ColCreditScore)
	scores := finiteValues(values)
	if len(scores) == 0 {
		return Artifact{}, fmt.Errorf("no %s values", models.ColCreditScore)
	}

	a := newArtifact(TitleCreditScore, sizeWide)
	a.xLabel, a.yLabel = models.ColCreditScore, "Count"
	a.layers = append(a.layers, histLayer{values: scores, bins: HistogramBins, fill: withAlpha(colorBlue, 160)})
	a.layers = appendDensity(a.layers, scores, colorBlue)
	a.xRange = extent(scores)
	return a, nil
}

func buildLoanVsDefault(rs models.RecordSet, _ models.CorrelationMatrix) (Artifact, error) {
	def, _ := rs.Floats(models.ColDefault)
	loan, _ := rs.Floats(models.ColLoanAmount)

	a := newArtifact(TitleLoanVsDefault, sizeWide)
	a.xLabel, a.yLabel = models.ColDefault, models.ColLoanAmount

	var box boxLayer
	for _, key := range distinct(def) {
		var group plotter.Values
		for row := range def {
			if def[row] == key && finite(loan[row]) {
				group = append(group, loan[row])
			}
		}
		if len(group) == 0 {
			continue
		}
		box.groups = append(box.groups, group)
		a.nominalX = append(a.nominalX, codeLabel(rs, models.ColDefault, key))
	}
	if len(box.groups) == 0 {
		return Artifact{}, fmt.Errorf("no %s values", models.ColLoanAmount)
	}
	a.layers = append(a.layers, box)
	return a, nil
}

func buildAgeByDefault(rs models.RecordSet, _ models.CorrelationMatrix) (Artifact, error) {
	age, _ := rs.Floats(models.ColAge)
	def, _ := rs.Floats(models.ColDefault)

	a := newArtifact(TitleAgeByDefault, sizeWide)
	a.xLabel, a.yLabel = models.ColAge, "Count"

	subsets := []struct {
		code  float64
		label string
		color color.NRGBA
	}{
		{0, "No Default", colorGreen},
		{1, "Default", colorRed},
	}

	var all []float64
	for _, s := range subsets {
		var values plotter.Values
		for row := range def {
			if def[row] == s.code && finite(age[row]) {
				values = append(values, age[row])
			}
		}
		if len(values) == 0 {
			continue
		}
		all = append(all, values...)
		a.layers = append(a.layers, histLayer{label: s.label, values: values, bins: HistogramBins, fill: withAlpha(s.color, 110)})
		a.layers = appendDensity(a.layers, values, s.color)
		a.legend = append(a.legend, s.label)
	}
	if len(all) == 0 {
		return Artifact{}, fmt.Errorf("no %s values for either %s outcome", models.ColAge, models.ColDefault)
	}
	a.xRange = extent(all)
	return a, nil
}

func buildDefaultByGender(rs models.RecordSet, _ models.CorrelationMatrix) (Artifact, error) {
	gender, _ := rs.Floats(models.ColGender)
	def, _ := rs.Floats(models.ColDefault)

	genders := distinct(gender)
	outcomes := distinct(def)
	if len(genders) == 0 || len(outcomes) == 0 {
		return Artifact{}, fmt.Errorf("no %s/%s values", models.ColGender, models.ColDefault)
	}

	a := newArtifact(TitleDefaultByGender, sizeSmall)
	a.xLabel, a.yLabel = models.ColGender, "Count"
	for _, g := range genders {
		a.nominalX = append(a.nominalX, codeLabel(rs, models.ColGender, g))
	}

	width := vg.Points(24)
	for j, outcome := range outcomes {
		counts := make(plotter.Values, len(genders))
		for row := range def {
			if def[row] != outcome {
				continue
			}
			for i, g := range genders {
				if gender[row] == g {
					counts[i]++
				}
			}
		}
		label := codeLabel(rs, models.ColDefault, outcome)
		offset := vg.Length(float64(j)-float64(len(outcomes)-1)/2) * width
		a.layers = append(a.layers, barLayer{label: label, counts: counts, width: width, offset: offset, color: seriesColor(j)})
		a.legend = append(a.legend, label)
	}
	return a, nil
}

func buildCorrelationHeatmap(_ models.RecordSet, corr models.CorrelationMatrix) (Artifact, error) {
	n := corr.Len()
	if n == 0 {
		return Artifact{}, fmt.Errorf("no numeric columns to correlate")
	}

	grid := matrixGrid{n: n, z: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			grid.z[i*n+j] = corr.At(i, j)
		}
	}

	names := corr.Names()
	reversed := make([]string, n)
	for i, name := range names {
		reversed[n-1-i] = name
	}

	a := newArtifact(TitleCorrelationHeatmap, sizeSquare)
	a.layers = append(a.layers, heatLayer{grid: grid, format: "%.2f"})
	a.nominalX = names
	a.nominalY = reversed
	a.slantX = true
	return a, nil
}

// appendDensity adds a density curve scaled to the counts of a histogram of
// values, when the values have any spread.
func appendDensity(layers []layer, values []float64, c color.NRGBA) []layer {
	r := extent(values)
	binWidth := (r.Max - r.Min) / HistogramBins
	density, ok := gaussianKDE(values, float64(len(values))*binWidth)
	if !ok {
		return layers
	}
	return append(layers, densityLayer{density: density, min: r.Min, max: r.Max, color: c})
}

// codeLabel renders a recoded value for a legend or tick, adding the original
// category label when the encoding table knows it.
func codeLabel(rs models.RecordSet, column string, v float64) string {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if v != math.Trunc(v) {
		return text
	}
	if label, ok := rs.Encoding().Label(column, int(v)); ok {
		return fmt.Sprintf("%s (%s)", text, label)
	}
	return text
}

// distinct returns the sorted distinct finite values.
func distinct(values []float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, v := range values {
		if finite(v) && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteValues(values []float64) plotter.Values {
	out := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if finite(v) {
			out = append(out, v)
		}
	}
	return out
}

func extent(values []float64) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	if r.Min == r.Max {
		r.Min -= 0.5
		r.Max += 0.5
	}
	return r
}

func paddedRange(values []float64) Range {
	r := extent(values)
	pad := (r.Max - r.Min) * 0.05
	return Range{Min: r.Min - pad, Max: r.Max + pad}
}
