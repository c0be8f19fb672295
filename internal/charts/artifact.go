// Package charts turns a prepared loan record set into the fixed sequence of
// descriptive chart artifacts shown by the viewer.
package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Canonical chart titles, in display order.
const (
	TitleIncomeVsLoan       = "Income vs Loan Amount"
	TitleCreditScore        = "Credit Score Distribution"
	TitleLoanVsDefault      = "Loan Amount vs Default"
	TitleAgeByDefault       = "Age Distribution of Loan Defaults"
	TitleDefaultByGender    = "Loan Default by Gender"
	TitleCorrelationHeatmap = "Correlation Heatmap"
)

// Titles returns every chart title in generation order.
func Titles() []string {
	return []string{
		TitleIncomeVsLoan,
		TitleCreditScore,
		TitleLoanVsDefault,
		TitleAgeByDefault,
		TitleDefaultByGender,
		TitleCorrelationHeatmap,
	}
}

// Range is an axis extent. The zero Range lets the plot pick its own bounds.
type Range struct {
	Min, Max float64
}

func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// layer adds one plotted element to a plot. Implementations own copies of
// their data and never modify it.
type layer interface {
	addTo(p *plot.Plot) error
}

// Artifact is an immutable description of one chart. Plot builds a fresh
// gonum plot from it on every call, so an artifact can be drawn and saved any
// number of times.
type Artifact struct {
	index    int
	title    string
	width    vg.Length
	height   vg.Length
	xLabel   string
	yLabel   string
	xRange   Range
	yRange   Range
	nominalX []string
	nominalY []string
	legend   []string
	layers   []layer
	slantX   bool
}

// Index is the artifact's position in the generated sequence.
func (a Artifact) Index() int { return a.index }

func (a Artifact) Title() string { return a.title }

// Size returns the figure size.
func (a Artifact) Size() (width, height vg.Length) { return a.width, a.height }

func (a Artifact) XLabel() string { return a.xLabel }
func (a Artifact) YLabel() string { return a.yLabel }
func (a Artifact) XRange() Range  { return a.xRange }
func (a Artifact) YRange() Range  { return a.yRange }

// Legend returns the legend entries in drawing order.
func (a Artifact) Legend() []string {
	return append([]string(nil), a.legend...)
}

// Plot builds the chart.
func (a Artifact) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = a.title
	p.X.Label.Text = a.xLabel
	p.Y.Label.Text = a.yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, l := range a.layers {
		if err := l.addTo(p); err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", a.title, i, err)
		}
	}

	if len(a.nominalX) > 0 {
		p.NominalX(a.nominalX...)
	}
	if len(a.nominalY) > 0 {
		p.NominalY(a.nominalY...)
	}
	if a.slantX {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}
	if !a.xRange.IsZero() {
		p.X.Min, p.X.Max = a.xRange.Min, a.xRange.Max
	}
	if !a.yRange.IsZero() {
		p.Y.Min, p.Y.Max = a.yRange.Min, a.yRange.Max
	}
	return p, nil
}
