package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	colorBlue   = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	colorOrange = color.NRGBA{R: 255, G: 127, B: 14, A: 255}
	colorGreen  = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	colorRed    = color.NRGBA{R: 214, G: 39, B: 40, A: 255}

	seriesColors = []color.NRGBA{colorBlue, colorOrange, colorGreen, colorRed}
)

func seriesColor(i int) color.NRGBA {
	return seriesColors[i%len(seriesColors)]
}

func withAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

type scatterLayer struct {
	label string
	xys   plotter.XYs
	color color.Color
}

func (l scatterLayer) addTo(p *plot.Plot) error {
	s, err := plotter.NewScatter(l.xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = l.color
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	if l.label != "" {
		p.Legend.Add(l.label, s)
	}
	return nil
}

type histLayer struct {
	label  string
	values plotter.Values
	bins   int
	fill   color.Color
}

func (l histLayer) addTo(p *plot.Plot) error {
	h, err := plotter.NewHist(l.values, l.bins)
	if err != nil {
		return err
	}
	h.FillColor = l.fill
	h.LineStyle.Color = color.White
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)
	if l.label != "" {
		p.Legend.Add(l.label, h)
	}
	return nil
}

// densityLayer draws a kernel density estimate scaled to histogram counts.
type densityLayer struct {
	density  func(float64) float64
	min, max float64
	color    color.Color
}

func (l densityLayer) addTo(p *plot.Plot) error {
	fn := plotter.NewFunction(l.density)
	fn.XMin, fn.XMax = l.min, l.max
	fn.Samples = 200
	fn.Color = l.color
	fn.Width = vg.Points(1.5)
	p.Add(fn)
	return nil
}

type boxLayer struct {
	groups []plotter.Values
}

func (l boxLayer) addTo(p *plot.Plot) error {
	for i, g := range l.groups {
		b, err := plotter.NewBoxPlot(vg.Points(50), float64(i), g)
		if err != nil {
			return err
		}
		b.FillColor = withAlpha(seriesColor(i), 180)
		p.Add(b)
	}
	return nil
}

type barLayer struct {
	label  string
	counts plotter.Values
	width  vg.Length
	offset vg.Length
	color  color.Color
}

func (l barLayer) addTo(p *plot.Plot) error {
	b, err := plotter.NewBarChart(l.counts, l.width)
	if err != nil {
		return err
	}
	b.Color = l.color
	b.Offset = l.offset
	b.LineStyle.Width = 0
	p.Add(b)
	if l.label != "" {
		p.Legend.Add(l.label, b)
	}
	return nil
}

// matrixGrid adapts a row-major square matrix to plotter.GridXYZ with row 0
// drawn at the top.
type matrixGrid struct {
	n int
	z []float64
}

func (g matrixGrid) Dims() (c, r int)   { return g.n, g.n }
func (g matrixGrid) Z(c, r int) float64 { return g.z[(g.n-1-r)*g.n+c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// heatLayer draws the matrix with a cool-warm palette over [-1, 1]. A non-empty
// format annotates every cell.
type heatLayer struct {
	grid   matrixGrid
	format string
}

// newHeatMap maps [-1, 1] onto the palette. Values just outside the range
// take the end colors instead of being left blank.
func newHeatMap(grid plotter.GridXYZ) *plotter.HeatMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	pal := cm.Palette(255)
	colors := pal.Colors()
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = -1, 1
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.Gray{Y: 200}
	return hm
}

func (l heatLayer) addTo(p *plot.Plot) error {
	p.Add(newHeatMap(l.grid))

	if l.format == "" {
		return nil
	}
	cells := plotter.XYLabels{}
	for r := 0; r < l.grid.n; r++ {
		for c := 0; c < l.grid.n; c++ {
			cells.XYs = append(cells.XYs, plotter.XY{X: l.grid.X(c), Y: l.grid.Y(r)})
			cells.Labels = append(cells.Labels, fmt.Sprintf(l.format, l.grid.Z(c, r)))
		}
	}
	annotations, err := plotter.NewLabels(cells)
	if err != nil {
		return err
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = text.XCenter
		annotations.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(annotations)
	return nil
}
