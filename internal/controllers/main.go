package controllers

import (
	"fmt"
	"image"

	"borrow-trends/internal/charts"
	"borrow-trends/internal/export"
	"borrow-trends/internal/logger"
	"borrow-trends/internal/session"
)

const componentName = "MainController"

// ChartView is the part of the main view the controller drives.
type ChartView interface {
	SetPreviousHandler(handler func())
	SetNextHandler(handler func())
	SetSaveHandler(handler func())
	SetCloseHandler(handler func())
	SetChartSelectHandler(handler func(string))

	SetChartTitles(titles []string)
	ShowChart(position, total int, title string, img image.Image)
	UpdateStatus(status string)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	Close()
}

// ChartSaver persists an artifact and reports where it went.
type ChartSaver interface {
	SaveToPath(a charts.Artifact) (string, error)
}

// PreviewFunc renders an artifact for on-screen display.
type PreviewFunc func(a charts.Artifact) (image.Image, error)

// DisplayPreview renders at the display resolution.
func DisplayPreview(a charts.Artifact) (image.Image, error) {
	return export.Render(a, export.DisplayDPI)
}

// MainController owns the navigation state and routes view events to the deck and the saver.
type MainController struct {
	deck    *session.Deck
	state   session.State
	saver   ChartSaver
	preview PreviewFunc
	logger  logger.Logger

	view     ChartView
	previews map[int]image.Image
	onClose  func()
	closed   bool
}

// NewMainController creates a controller over deck. A nil preview uses DisplayPreview.
func NewMainController(deck *session.Deck, saver ChartSaver, preview PreviewFunc, log logger.Logger) *MainController {
	if preview == nil {
		preview = DisplayPreview
	}
	return &MainController{
		deck:     deck,
		saver:    saver,
		preview:  preview,
		logger:   log,
		previews: make(map[int]image.Image),
	}
}

// SetMainView associates the view with this controller and connects its callbacks.
func (mc *MainController) SetMainView(view ChartView) {
	mc.view = view

	view.SetPreviousHandler(mc.Previous)
	view.SetNextHandler(mc.Next)
	view.SetSaveHandler(mc.SaveCurrent)
	view.SetCloseHandler(mc.Close)
	view.SetChartSelectHandler(mc.SelectTitle)

	view.SetChartTitles(mc.deck.Titles())
}

// SetCloseCallback registers work to run once when the session ends.
func (mc *MainController) SetCloseCallback(fn func()) {
	mc.onClose = fn
}

// State returns the current navigation state.
func (mc *MainController) State() session.State {
	return mc.state
}

// ShowIndex selects the artifact at i. Out-of-range indices keep the current chart.
func (mc *MainController) ShowIndex(i int) {
	mc.apply(mc.deck.SelectByIndex(mc.state, i))
}

func (mc *MainController) Next() {
	mc.apply(mc.deck.SelectNext(mc.state))
}

func (mc *MainController) Previous() {
	mc.apply(mc.deck.SelectPrevious(mc.state))
}

// SelectTitle selects the artifact with the given title. Unknown titles are ignored.
func (mc *MainController) SelectTitle(title string) {
	mc.apply(mc.deck.SelectByTitle(mc.state, title))
}

// apply stores the new state and refreshes the view.
func (mc *MainController) apply(next session.State) {
	mc.state = next
	mc.refresh()
}

func (mc *MainController) refresh() {
	if mc.view == nil {
		return
	}

	artifact, ok := mc.deck.Current(mc.state)
	if !ok {
		mc.view.UpdateStatus("No graphs available")
		return
	}

	img, err := mc.previewFor(artifact)
	if err != nil {
		mc.logger.Error(componentName, err, map[string]interface{}{
			"index": artifact.Index(),
			"title": artifact.Title(),
		})
		mc.view.ShowError("Render failed", err)
		return
	}

	mc.view.ShowChart(mc.state.Current, mc.deck.Len(), artifact.Title(), img)
	mc.view.UpdateStatus(artifact.Title())
}

func (mc *MainController) previewFor(a charts.Artifact) (image.Image, error) {
	if img, ok := mc.previews[a.Index()]; ok {
		return img, nil
	}

	img, err := mc.preview(a)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", a.Title(), err)
	}

	mc.previews[a.Index()] = img
	return img, nil
}

// SaveCurrent exports the current artifact and reports the outcome in a dialog.
func (mc *MainController) SaveCurrent() {
	artifact, ok := mc.deck.Current(mc.state)
	if !ok {
		return
	}

	path, err := mc.saver.SaveToPath(artifact)
	if err != nil {
		mc.logger.Error(componentName, err, map[string]interface{}{
			"index": artifact.Index(),
		})
		if mc.view != nil {
			mc.view.UpdateStatus("Save failed")
			mc.view.ShowError("Save failed", err)
		}
		return
	}

	mc.logger.Info(componentName, "graph saved", map[string]interface{}{
		"index": artifact.Index(),
		"path":  path,
	})

	if mc.view != nil {
		mc.view.UpdateStatus(fmt.Sprintf("Saved %s", path))
		mc.view.ShowInfo("Success", SavedMessage(artifact.Index()))
	}
}

// SavedMessage is the confirmation shown after a successful save.
func SavedMessage(index int) string {
	return fmt.Sprintf("Graph %d saved as an image!", index)
}

// Close ends the session. The close callback runs once.
func (mc *MainController) Close() {
	if mc.closed {
		return
	}
	mc.closed = true

	mc.logger.Info(componentName, "session closing", map[string]interface{}{
		"current": mc.state.Current,
		"cached":  len(mc.previews),
	})

	if mc.onClose != nil {
		mc.onClose()
	}
	if mc.view != nil {
		mc.view.Close()
	}
}

// Shutdown closes the session from outside the UI, e.g. on a signal.
func (mc *MainController) Shutdown() {
	mc.Close()
}
