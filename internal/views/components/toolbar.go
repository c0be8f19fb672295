package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the chart dropdown and the navigation and save buttons.
type Toolbar struct {
	container   *fyne.Container
	chartSelect *widget.Select
	prevButton  *widget.Button
	nextButton  *widget.Button
	saveButton  *widget.Button

	// Event handlers
	previousHandler    func()
	nextHandler        func()
	saveHandler        func()
	chartSelectHandler func(string)

	// syncing is set while the dropdown is updated programmatically so the
	// change is not reported back as a user selection.
	syncing bool
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.chartSelect = widget.NewSelect(nil, nil)
	t.chartSelect.PlaceHolder = "Select a graph"

	t.prevButton = widget.NewButton("Previous", nil)
	t.nextButton = widget.NewButton("Next", nil)

	t.saveButton = widget.NewButton("Save Graph", nil)
	t.saveButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		container.NewCenter(t.chartSelect),
		container.NewCenter(container.NewHBox(
			t.prevButton,
			t.nextButton,
			widget.NewSeparator(),
			t.saveButton,
		)),
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.prevButton.OnTapped = func() {
		if t.previousHandler != nil {
			t.previousHandler()
		}
	}

	t.nextButton.OnTapped = func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	}

	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}

	t.chartSelect.OnChanged = func(title string) {
		if t.syncing {
			return
		}
		if t.chartSelectHandler != nil {
			t.chartSelectHandler(title)
		}
	}
}

// Event handler setters

func (t *Toolbar) SetPreviousHandler(handler func()) {
	t.previousHandler = handler
}

func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetChartSelectHandler(handler func(string)) {
	t.chartSelectHandler = handler
}

// SetChartTitles replaces the dropdown options.
func (t *Toolbar) SetChartTitles(titles []string) {
	t.chartSelect.Options = append([]string(nil), titles...)
	t.chartSelect.Refresh()
}

// SetSelectedTitle shows title in the dropdown without firing the select handler.
func (t *Toolbar) SetSelectedTitle(title string) {
	t.syncing = true
	defer func() { t.syncing = false }()
	t.chartSelect.SetSelected(title)
}

// GetSelectedTitle returns the title shown in the dropdown.
func (t *Toolbar) GetSelectedTitle() string {
	return t.chartSelect.Selected
}

// EnableSave toggles the save button.
func (t *Toolbar) EnableSave(enabled bool) {
	if enabled {
		t.saveButton.Enable()
	} else {
		t.saveButton.Disable()
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// Buttons exposes the toolbar buttons, for tests and keyboard shortcuts.
func (t *Toolbar) Buttons() (previous, next, save *widget.Button) {
	return t.prevButton, t.nextButton, t.saveButton
}

// Select exposes the chart dropdown.
func (t *Toolbar) Select() *widget.Select {
	return t.chartSelect
}
