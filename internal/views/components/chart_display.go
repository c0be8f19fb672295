package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ChartAreaWidth  = 800
	ChartAreaHeight = 500
)

// ChartDisplay shows the currently selected chart image.
type ChartDisplay struct {
	container   *fyne.Container
	chartImage  *canvas.Image
	placeholder image.Image
	hasChart    bool
}

// NewChartDisplay creates a new chart display component
func NewChartDisplay() *ChartDisplay {
	display := &ChartDisplay{}
	display.createComponents()
	display.setupLayout()
	return display
}

func (cd *ChartDisplay) createComponents() {
	cd.placeholder = createPlaceholderImage()

	cd.chartImage = canvas.NewImageFromImage(cd.placeholder)
	cd.chartImage.FillMode = canvas.ImageFillContain
	cd.chartImage.ScaleMode = canvas.ImageScaleSmooth
	cd.chartImage.SetMinSize(fyne.NewSize(ChartAreaWidth, ChartAreaHeight))
}

// createPlaceholderImage draws a light gray panel with a border.
func createPlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, ChartAreaWidth, ChartAreaHeight))

	lightGray := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < ChartAreaHeight; y++ {
		for x := 0; x < ChartAreaWidth; x++ {
			if x == 0 || y == 0 || x == ChartAreaWidth-1 || y == ChartAreaHeight-1 {
				img.Set(x, y, borderColor)
			} else {
				img.Set(x, y, lightGray)
			}
		}
	}
	return img
}

func (cd *ChartDisplay) setupLayout() {
	background := canvas.NewRectangle(color.White)
	cd.container = container.NewStack(background, cd.chartImage)
}

// SetChart replaces the displayed image. nil restores the placeholder.
func (cd *ChartDisplay) SetChart(img image.Image) {
	if img != nil {
		cd.chartImage.Image = img
		cd.hasChart = true
	} else {
		cd.chartImage.Image = cd.placeholder
		cd.hasChart = false
	}
	cd.chartImage.Refresh()
}

func (cd *ChartDisplay) HasChart() bool {
	return cd.hasChart
}

// GetImage returns the image currently on screen.
func (cd *ChartDisplay) GetImage() image.Image {
	return cd.chartImage.Image
}

func (cd *ChartDisplay) GetContainer() *fyne.Container {
	return cd.container
}
