package views

import (
	"image"

	"borrow-trends/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle = "Borrow Trends Analysis"
	HeaderText  = "Borrow Trends Analysis Project"
)

// MainView is the chart viewer window: header, chart canvas, toolbar and status bar.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	header        *widget.Label
	chartDisplay  *components.ChartDisplay
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
	closeButton   *widget.Button

	// Event handlers - connected to controller
	previousHandler    func()
	nextHandler        func()
	saveHandler        func()
	closeHandler       func()
	chartSelectHandler func(string)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.header = widget.NewLabelWithStyle(HeaderText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	mv.chartDisplay = components.NewChartDisplay()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
	mv.closeButton = widget.NewButton("Close", nil)
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		container.NewBorder(nil, nil, nil, mv.closeButton, mv.statusBar.GetContainer()),
	)

	mv.mainContainer = container.NewBorder(
		mv.header,                      // top
		bottomArea,                     // bottom
		nil,                            // left
		nil,                            // right
		mv.chartDisplay.GetContainer(), // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetPreviousHandler(func() {
		if mv.previousHandler != nil {
			mv.previousHandler()
		}
	})

	mv.toolbar.SetNextHandler(func() {
		if mv.nextHandler != nil {
			mv.nextHandler()
		}
	})

	mv.toolbar.SetSaveHandler(func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})

	mv.toolbar.SetChartSelectHandler(func(title string) {
		if mv.chartSelectHandler != nil {
			mv.chartSelectHandler(title)
		}
	})

	mv.closeButton.OnTapped = func() {
		if mv.closeHandler != nil {
			mv.closeHandler()
		}
	}
}

// Event handler setters - called by controller

func (mv *MainView) SetPreviousHandler(handler func()) {
	mv.previousHandler = handler
}

func (mv *MainView) SetNextHandler(handler func()) {
	mv.nextHandler = handler
}

func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

func (mv *MainView) SetCloseHandler(handler func()) {
	mv.closeHandler = handler
}

func (mv *MainView) SetChartSelectHandler(handler func(string)) {
	mv.chartSelectHandler = handler
}

// UI update methods - called by controller

// SetChartTitles fills the dropdown and the position counter.
func (mv *MainView) SetChartTitles(titles []string) {
	fyne.Do(func() {
		mv.toolbar.SetChartTitles(titles)
		mv.toolbar.EnableSave(len(titles) > 0)
	})
}

// ShowChart displays img and syncs the dropdown to title.
func (mv *MainView) ShowChart(position, total int, title string, img image.Image) {
	fyne.Do(func() {
		mv.chartDisplay.SetChart(img)
		mv.toolbar.SetSelectedTitle(title)
		mv.statusBar.SetChartPosition(position, total)
	})
}

// SetDataInfo shows the record set dimensions in the status bar.
func (mv *MainView) SetDataInfo(rows, columns int) {
	fyne.Do(func() {
		mv.statusBar.SetDataInfo(rows, columns)
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowFatal shows err in place of the charts; onClosed runs when the dialog is dismissed.
func (mv *MainView) ShowFatal(err error, onClosed func()) {
	fyne.Do(func() {
		mv.toolbar.EnableSave(false)
		mv.statusBar.SetStatus("Failed to load data")

		d := dialog.NewError(err, mv.window)
		if onClosed != nil {
			d.SetOnClosed(onClosed)
		}
		d.Show()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetChartDisplay returns the chart display component
func (mv *MainView) GetChartDisplay() *components.ChartDisplay {
	return mv.chartDisplay
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// CloseButton returns the session close button.
func (mv *MainView) CloseButton() *widget.Button {
	return mv.closeButton
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// Close closes the view
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}

// ViewState is a snapshot of what the view currently shows.
type ViewState struct {
	HasChart      bool
	SelectedTitle string
	ChartPosition string
	StatusMessage string
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		HasChart:      mv.chartDisplay.HasChart(),
		SelectedTitle: mv.toolbar.GetSelectedTitle(),
		ChartPosition: mv.statusBar.GetChartPosition(),
		StatusMessage: mv.statusBar.GetStatus(),
	}
}
