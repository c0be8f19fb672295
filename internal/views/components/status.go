package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	dataInfo    *widget.Label
	chartInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.dataInfo = widget.NewLabel("No data loaded")
	sb.chartInfo = widget.NewLabel("Graph: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.dataInfo,
		widget.NewSeparator(),
		sb.chartInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetDataInfo summarises the loaded record set.
func (sb *StatusBar) SetDataInfo(rows, columns int) {
	sb.dataInfo.SetText(fmt.Sprintf("Records: %d, columns: %d", rows, columns))
}

// GetDataInfo returns the record set summary text.
func (sb *StatusBar) GetDataInfo() string {
	return sb.dataInfo.Text
}

// SetChartPosition shows the 1-based position of the current chart.
func (sb *StatusBar) SetChartPosition(current, total int) {
	if total == 0 {
		sb.chartInfo.SetText("Graph: --")
		return
	}
	sb.chartInfo.SetText(fmt.Sprintf("Graph %d of %d", current+1, total))
}

// GetChartPosition returns the chart position text.
func (sb *StatusBar) GetChartPosition() string {
	return sb.chartInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
